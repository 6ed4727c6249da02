package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaultLibrary(t *testing.T) {
	lib := DefaultLibrary()

	if len(lib.Playlists) != 1 {
		t.Fatalf("expected exactly one playlist, got %d", len(lib.Playlists))
	}
	pl := lib.Playlists[0]
	if pl.Name != "My Playlist" {
		t.Errorf("expected 'My Playlist', got %q", pl.Name)
	}
	if pl.ID == "" {
		t.Error("expected generated id")
	}
	if pl.Songs == nil || len(pl.Songs) != 0 {
		t.Errorf("expected empty songs slice, got %v", pl.Songs)
	}
}

func TestPlaylistTrackIndex(t *testing.T) {
	pl := Playlist{Songs: []Track{{ID: "a"}, {ID: "b"}}}

	if got := pl.TrackIndex("b"); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := pl.TrackIndex("missing"); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}

func TestLibraryLookups(t *testing.T) {
	lib := &Library{Playlists: []Playlist{
		{ID: "p1", Songs: []Track{{ID: "t1"}}},
		{ID: "p2", Songs: []Track{}},
	}}

	if lib.Playlist("p2") == nil {
		t.Error("expected playlist p2")
	}
	if lib.Playlist("p3") != nil {
		t.Error("expected nil for unknown playlist")
	}
	if lib.Track("p1", "t1") == nil {
		t.Error("expected track t1")
	}
	if lib.Track("p2", "t1") != nil {
		t.Error("track lookup must be scoped to its playlist")
	}
}

func TestNewTrack(t *testing.T) {
	ex := Extraction{Title: "Song", Artist: "Artist", DurationSeconds: 185}
	track := NewTrack("/music/song.mp3", ex, &NamedPalette{Vibrant: "#ff0000"})

	if track.ID == "" {
		t.Error("expected generated id")
	}
	if track.Duration != "3:05" {
		t.Errorf("expected formatted duration 3:05, got %q", track.Duration)
	}
	if track.FilePath != "/music/song.mp3" {
		t.Errorf("unexpected file path %q", track.FilePath)
	}
	if track.ColorPalette == nil || track.ColorPalette.Vibrant != "#ff0000" {
		t.Errorf("palette not attached: %+v", track.ColorPalette)
	}
}

func TestFallbackExtraction(t *testing.T) {
	ex := FallbackExtraction("/downloads/raw track.mp3")

	if ex.Title != "raw track" {
		t.Errorf("expected base name title, got %q", ex.Title)
	}
	if ex.Artist != UnknownArtist {
		t.Errorf("expected %q, got %q", UnknownArtist, ex.Artist)
	}
	if ex.DurationSeconds != 0 || ex.Art != nil {
		t.Errorf("fallback must carry no duration or art: %+v", ex)
	}
}

// The snapshot format is the on-disk contract; key names are load-bearing.
func TestTrackJSONShape(t *testing.T) {
	track := Track{
		ID:       "t1",
		Title:    "Song",
		Artist:   "Artist",
		Duration: "3:05",
		FilePath: "/music/song.mp3",
	}

	data, err := json.Marshal(track)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	for _, key := range []string{`"id"`, `"title"`, `"artist"`, `"duration"`, `"filePath"`, `"albumArt"`, `"colorPalette"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("expected key %s in %s", key, data)
		}
	}
}

func TestPlaybackState(t *testing.T) {
	t.Run("ClampsStartupVolume", func(t *testing.T) {
		if s := NewPlaybackState(300); s.Volume != 100 {
			t.Errorf("expected clamp to 100, got %d", s.Volume)
		}
		if s := NewPlaybackState(-1); s.Volume != 0 {
			t.Errorf("expected clamp to 0, got %d", s.Volume)
		}
	})

	t.Run("Idle", func(t *testing.T) {
		s := NewPlaybackState(70)
		if !s.Idle() {
			t.Error("fresh state should be idle")
		}
		s.TrackID = "t1"
		if s.Idle() {
			t.Error("state with a track is not idle")
		}
	})
}
