// package picker locates audio files on disk for import.
package picker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// audioExtensions are the playable container formats, matched
// case-insensitively against file extensions.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".ogg":  true,
	".m4a":  true,
	".flac": true,
	".aac":  true,
	".mpeg": true,
}

// IsAudioFile reports whether the path has a recognized audio extension.
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// Picker lists the audio files to ingest from a folder.
type Picker interface {
	ListAudioFiles(dir string) ([]string, error)
}

// DirectoryPicker reads a single directory level, in directory order,
// keeping only recognized audio files. Subdirectories are not descended.
type DirectoryPicker struct{}

// ListAudioFiles returns absolute paths of the audio files directly inside
// dir. An unreadable directory is an error; a readable directory with no
// audio files returns an empty slice.
func (DirectoryPicker) ListAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", dir, err)
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !IsAudioFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		files = append(files, path)
	}
	return files, nil
}
