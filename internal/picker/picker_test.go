package picker

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsAudioFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"SONG.MP3", true},
		{"track.FLAC", true},
		{"voice.m4a", true},
		{"old.mpeg", true},
		{"cover.jpg", false},
		{"notes.txt", false},
		{"noext", false},
	}

	for _, tc := range cases {
		if got := IsAudioFile(tc.path); got != tc.want {
			t.Errorf("IsAudioFile(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestDirectoryPicker(t *testing.T) {
	t.Run("FiltersAndOrders", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"a.mp3", "b.txt", "c.WAV", "d.ogg"} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}
		}
		if err := os.Mkdir(filepath.Join(dir, "nested.mp3"), 0755); err != nil {
			t.Fatalf("failed to create subdirectory: %v", err)
		}

		files, err := DirectoryPicker{}.ListAudioFiles(dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(files) != 3 {
			t.Fatalf("expected 3 audio files, got %d: %v", len(files), files)
		}
		for i, want := range []string{"a.mp3", "c.WAV", "d.ogg"} {
			if filepath.Base(files[i]) != want {
				t.Errorf("position %d: got %s, want %s", i, files[i], want)
			}
		}
	})

	t.Run("EmptyFolderIsNotAnError", func(t *testing.T) {
		files, err := DirectoryPicker{}.ListAudioFiles(t.TempDir())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 0 {
			t.Errorf("expected no files, got %v", files)
		}
	})

	t.Run("MissingFolderIsAnError", func(t *testing.T) {
		if _, err := (DirectoryPicker{}).ListAudioFiles(filepath.Join(t.TempDir(), "absent")); err == nil {
			t.Error("expected error for missing folder")
		}
	})
}
