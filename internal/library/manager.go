// package library mutates the playlist model and keeps the snapshot current.
//
// Every public mutation persists exactly once, after the full change is
// applied in memory. Batch ingestion is strictly sequential per file, and a
// file whose metadata cannot be read still becomes a track through the
// fallback fields, so one corrupt download never sinks an import.
package library

import (
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/resonate/internal/metadata"
	"github.com/desertthunder/resonate/internal/models"
	"github.com/desertthunder/resonate/internal/palette"
	"github.com/desertthunder/resonate/internal/picker"
	"github.com/desertthunder/resonate/internal/shared"
)

// Store persists and restores the library snapshot.
// Implemented by [store.SnapshotStore].
type Store interface {
	Load() (*models.Library, error)
	Save(lib *models.Library) error
}

// RemovalListener observes playlist and track removals. It is invoked
// synchronously before the removal is persisted; an empty trackID means the
// whole playlist is being removed.
type RemovalListener func(playlistID, trackID string)

// ImportResult summarizes one folder import.
type ImportResult struct {
	Playlist  *models.Playlist
	Imported  int // tracks added
	Fallbacks int // files ingested with fallback metadata
}

// Manager owns the in-memory library and coordinates extraction, palette
// derivation, and persistence. It is not safe for concurrent use.
type Manager struct {
	store     Store
	extractor metadata.Extractor
	colors    palette.Extractor
	files     picker.Picker
	logger    *log.Logger
	library   *models.Library
	onRemoved RemovalListener
}

// NewManager loads the persisted library and returns a manager over it.
// A nil colors extractor disables palette derivation; a nil files picker
// defaults to reading directories.
func NewManager(store Store, extractor metadata.Extractor, colors palette.Extractor, files picker.Picker, logger *log.Logger) (*Manager, error) {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if files == nil {
		files = picker.DirectoryPicker{}
	}

	lib, err := store.Load()
	if err != nil {
		return nil, err
	}

	return &Manager{
		store:     store,
		extractor: extractor,
		colors:    colors,
		files:     files,
		logger:    logger,
		library:   lib,
	}, nil
}

// Library returns the live library. Callers must treat it as read-only.
func (m *Manager) Library() *models.Library {
	return m.library
}

// SetRemovalListener registers the removal observer. Only one listener is
// held; registering replaces any previous one.
func (m *Manager) SetRemovalListener(fn RemovalListener) {
	m.onRemoved = fn
}

// CreatePlaylist appends a new empty playlist and persists.
// Blank or whitespace-only names are rejected.
func (m *Manager) CreatePlaylist(name string) (*models.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.ErrEmptyName
	}

	pl := models.Playlist{ID: shared.GenerateID(), Name: name, Songs: []models.Track{}}
	m.library.Playlists = append(m.library.Playlists, pl)

	if err := m.persist(); err != nil {
		return nil, err
	}
	m.logger.Info("created playlist", "name", name, "id", pl.ID)
	return m.library.Playlist(pl.ID), nil
}

// DeletePlaylist removes a playlist, notifying the removal listener before
// the mutation is persisted.
func (m *Manager) DeletePlaylist(playlistID string) error {
	idx := -1
	for i := range m.library.Playlists {
		if m.library.Playlists[i].ID == playlistID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}

	m.notifyRemoved(playlistID, "")
	m.library.Playlists = append(m.library.Playlists[:idx], m.library.Playlists[idx+1:]...)

	if err := m.persist(); err != nil {
		return err
	}
	m.logger.Info("deleted playlist", "id", playlistID)
	return nil
}

// ImportFolder creates a playlist named after the folder and ingests every
// audio file directly inside it, in directory order. A folder with no audio
// files creates nothing and returns [shared.ErrNoAudioFiles]. The new
// playlist and all its tracks persist in a single write.
func (m *Manager) ImportFolder(ctx context.Context, dir string) (*ImportResult, error) {
	paths, err := m.files.ListAudioFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrNoAudioFiles, dir)
	}

	tracks, fallbacks, err := m.ingestAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	pl := models.Playlist{ID: shared.GenerateID(), Name: filepath.Base(dir), Songs: tracks}
	m.library.Playlists = append(m.library.Playlists, pl)

	if err := m.persist(); err != nil {
		return nil, err
	}

	m.logger.Info("imported folder", "dir", dir, "tracks", len(tracks), "fallbacks", fallbacks)
	return &ImportResult{
		Playlist:  m.library.Playlist(pl.ID),
		Imported:  len(tracks),
		Fallbacks: fallbacks,
	}, nil
}

// AddTracks ingests the given files into an existing playlist, appending in
// argument order, and persists once for the whole batch.
func (m *Manager) AddTracks(ctx context.Context, playlistID string, paths []string) (*ImportResult, error) {
	pl := m.library.Playlist(playlistID)
	if pl == nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}
	if len(paths) == 0 {
		return &ImportResult{Playlist: pl}, nil
	}

	tracks, fallbacks, err := m.ingestAll(ctx, paths)
	if err != nil {
		return nil, err
	}
	pl.Songs = append(pl.Songs, tracks...)

	if err := m.persist(); err != nil {
		return nil, err
	}

	m.logger.Info("added tracks", "playlist", playlistID, "tracks", len(tracks), "fallbacks", fallbacks)
	return &ImportResult{Playlist: pl, Imported: len(tracks), Fallbacks: fallbacks}, nil
}

// DeleteTrack removes one track, notifying the removal listener before the
// mutation is persisted. Deleting a track that is already gone succeeds
// without touching the snapshot.
func (m *Manager) DeleteTrack(playlistID, trackID string) error {
	pl := m.library.Playlist(playlistID)
	if pl == nil {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}

	idx := pl.TrackIndex(trackID)
	if idx < 0 {
		return nil
	}

	m.notifyRemoved(playlistID, trackID)
	pl.Songs = append(pl.Songs[:idx], pl.Songs[idx+1:]...)

	if err := m.persist(); err != nil {
		return err
	}
	m.logger.Info("deleted track", "playlist", playlistID, "track", trackID)
	return nil
}

// ingestAll converts files to tracks one at a time, in order. Extraction
// and palette failures degrade per file; only context cancellation aborts
// the batch.
func (m *Manager) ingestAll(ctx context.Context, paths []string) ([]models.Track, int, error) {
	tracks := make([]models.Track, 0, len(paths))
	fallbacks := 0

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fallbacks, err
		}

		track, fellBack := m.ingest(ctx, path)
		if fellBack {
			fallbacks++
		}
		tracks = append(tracks, track)
	}

	return tracks, fallbacks, nil
}

// ingest builds one track. The second return reports whether fallback
// metadata was used.
func (m *Manager) ingest(ctx context.Context, path string) (models.Track, bool) {
	ex, err := m.extractor.Extract(ctx, path)
	if err != nil {
		m.logger.Warn("metadata extraction failed, using fallback", "path", path, "err", err)
		return models.NewTrack(path, models.FallbackExtraction(path), nil), true
	}

	return models.NewTrack(path, ex, m.derivePalette(ctx, path, ex)), false
}

// derivePalette runs color extraction over embedded art, if any. Failures
// are logged and yield a nil palette.
func (m *Manager) derivePalette(ctx context.Context, path string, ex models.Extraction) *models.NamedPalette {
	if m.colors == nil || ex.Art == nil {
		return nil
	}

	raw, err := base64.StdEncoding.DecodeString(ex.Art.Data)
	if err != nil {
		m.logger.Warn("embedded art is not valid base64", "path", path, "err", err)
		return nil
	}

	p, err := m.colors.ExtractPalette(ctx, raw)
	if err != nil {
		m.logger.Warn("palette extraction failed", "path", path, "err", err)
		return nil
	}
	return &p
}

func (m *Manager) notifyRemoved(playlistID, trackID string) {
	if m.onRemoved != nil {
		m.onRemoved(playlistID, trackID)
	}
}

func (m *Manager) persist() error {
	return m.store.Save(m.library)
}
