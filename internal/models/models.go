package models

import (
	"github.com/desertthunder/resonate/internal/shared"
)

// AlbumArt holds an embedded cover image exactly as persisted in the snapshot.
type AlbumArt struct {
	Format string `json:"format"` // MIME type, e.g. "image/jpeg"
	Data   string `json:"data"`   // base64-encoded image bytes
}

// NamedPalette maps the six semantic color roles to hex color strings.
// An empty string means extraction yielded no swatch for that role.
type NamedPalette struct {
	Vibrant      string `json:"vibrant,omitempty"`
	DarkVibrant  string `json:"darkVibrant,omitempty"`
	LightVibrant string `json:"lightVibrant,omitempty"`
	Muted        string `json:"muted,omitempty"`
	DarkMuted    string `json:"darkMuted,omitempty"`
	LightMuted   string `json:"lightMuted,omitempty"`
}

// Track is one playable audio item. Tracks are immutable after ingestion
// and owned exclusively by their parent Playlist.
type Track struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Artist       string        `json:"artist"`
	Duration     string        `json:"duration"` // formatted "m:ss"
	FilePath     string        `json:"filePath"`
	AlbumArt     *AlbumArt     `json:"albumArt"`
	ColorPalette *NamedPalette `json:"colorPalette"`
}

// Playlist is a named, ordered collection of Tracks. Song order is
// insertion order and drives next/previous sequencing.
type Playlist struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Songs []Track `json:"songs"`
}

// TrackIndex returns the position of the track with the given id, or -1.
func (p *Playlist) TrackIndex(trackID string) int {
	for i, s := range p.Songs {
		if s.ID == trackID {
			return i
		}
	}
	return -1
}

// Library is the full ordered set of playlists and the sole persisted root.
type Library struct {
	Playlists []Playlist `json:"playlists"`
}

// DefaultLibrary returns the library used on first run: a single empty
// playlist named "My Playlist".
func DefaultLibrary() *Library {
	return &Library{
		Playlists: []Playlist{
			{ID: shared.GenerateID(), Name: "My Playlist", Songs: []Track{}},
		},
	}
}

// Playlist returns the playlist with the given id, or nil.
func (l *Library) Playlist(playlistID string) *Playlist {
	for i := range l.Playlists {
		if l.Playlists[i].ID == playlistID {
			return &l.Playlists[i]
		}
	}
	return nil
}

// Track returns the track with the given id inside the given playlist, or nil.
func (l *Library) Track(playlistID, trackID string) *Track {
	pl := l.Playlist(playlistID)
	if pl == nil {
		return nil
	}
	if i := pl.TrackIndex(trackID); i >= 0 {
		return &pl.Songs[i]
	}
	return nil
}

// Extraction is the result of running metadata extraction on one file.
type Extraction struct {
	Title           string
	Artist          string
	DurationSeconds float64
	Art             *AlbumArt
}

// FallbackExtraction builds the extraction used when a file cannot be
// parsed: base name as title, "Unknown Artist", zero duration, no art.
func FallbackExtraction(filePath string) Extraction {
	return Extraction{
		Title:  shared.BaseTitle(filePath),
		Artist: UnknownArtist,
	}
}

// NewTrack builds a Track from an extraction result, assigning a fresh id
// and formatting the duration for display.
func NewTrack(filePath string, ex Extraction, palette *NamedPalette) Track {
	return Track{
		ID:           shared.GenerateID(),
		Title:        ex.Title,
		Artist:       ex.Artist,
		Duration:     shared.FormatTime(ex.DurationSeconds),
		FilePath:     filePath,
		AlbumArt:     ex.Art,
		ColorPalette: palette,
	}
}

// Transport display defaults shown when nothing is selected.
const (
	DefaultTitle  = "Select a Song"
	UnknownArtist = "Unknown Artist"
)

// PlaybackState is the transient "what is selected/playing" state. It is
// never persisted; every application start begins with nothing selected.
type PlaybackState struct {
	PlaylistID     string
	TrackID        string
	IsPlaying      bool
	IsMuted        bool
	Volume         int // 0-100
	PreviousVolume int // restored by unmute
}

// NewPlaybackState returns the initial state with the given startup volume.
func NewPlaybackState(volume int) PlaybackState {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	return PlaybackState{Volume: volume, PreviousVolume: volume}
}

// Idle reports whether no track is selected.
func (s PlaybackState) Idle() bool {
	return s.TrackID == ""
}
