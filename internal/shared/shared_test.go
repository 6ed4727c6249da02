package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("expected a valid uuid, got %q: %v", a, err)
	}
	if a == b {
		t.Errorf("consecutive ids must differ, both %q", a)
	}
}

func TestFormatTime(t *testing.T) {
	tc := []struct {
		name    string
		seconds float64
		want    string
	}{
		{name: "zero", seconds: 0, want: "0:00"},
		{name: "negative", seconds: -3, want: "0:00"},
		{name: "under a minute", seconds: 59, want: "0:59"},
		{name: "exact minute", seconds: 60, want: "1:00"},
		{name: "pads seconds", seconds: 61.7, want: "1:01"},
		{name: "long track", seconds: 3671, want: "61:11"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTime(tt.seconds)
			if got != tt.want {
				t.Errorf("FormatTime(%v) = %v, want %v", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestBaseTitle(t *testing.T) {
	tc := []struct {
		name string
		path string
		want string
	}{
		{name: "simple file", path: "/music/song.mp3", want: "song"},
		{name: "nested path", path: "/a/b/c/track.flac", want: "track"},
		{name: "no extension", path: "/music/song", want: "song"},
		{name: "dots in name", path: "/music/my.favorite.song.ogg", want: "my.favorite.song"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseTitle(tt.path)
			if got != tt.want {
				t.Errorf("BaseTitle(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(buf)

	logger.Info("hello")
	if buf.Len() == 0 {
		t.Error("expected log output in buffer")
	}
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create file logger: %v", err)
	}
	logger.Info("hello")

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("log file should exist: %v", err)
	}
	if info.Size() == 0 {
		t.Error("expected log output in file")
	}
}
