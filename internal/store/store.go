// package store persists the library snapshot as human-readable JSON.
//
// Every mutation overwrites the full snapshot. Writes go through a
// temp-file-then-rename so a crash mid-write never corrupts the store.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/desertthunder/resonate/internal/models"
	"github.com/desertthunder/resonate/internal/shared"
)

// SnapshotStore loads and saves a [models.Library] at a fixed path.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore creates a store writing to the given path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Path returns the snapshot file location.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Save writes the full library snapshot atomically.
func (s *SnapshotStore) Save(lib *models.Library) error {
	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal snapshot: %v", shared.ErrPersistence, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create snapshot directory: %v", shared.ErrPersistence, err)
	}

	tmp, err := os.CreateTemp(dir, ".playlists-*.json")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", shared.ErrPersistence, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write snapshot: %v", shared.ErrPersistence, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to close temp file: %v", shared.ErrPersistence, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to replace snapshot: %v", shared.ErrPersistence, err)
	}

	return nil
}

// Load reads the library snapshot. A missing file is treated as first run
// and yields the default library rather than an error.
func (s *SnapshotStore) Load() (*models.Library, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return models.DefaultLibrary(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read snapshot: %v", shared.ErrPersistence, err)
	}

	var lib models.Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("%w: failed to parse snapshot: %v", shared.ErrPersistence, err)
	}
	if lib.Playlists == nil {
		return models.DefaultLibrary(), nil
	}

	return &lib, nil
}
