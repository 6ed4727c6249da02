package formatter

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/resonate/internal/models"
)

func samplePlaylist() *models.Playlist {
	return &models.Playlist{
		ID:   "pl-export",
		Name: "Evening",
		Songs: []models.Track{
			{ID: "t1", Title: "First", Artist: "Ana", Duration: "3:05", FilePath: "/music/first.mp3"},
			{ID: "t2", Title: "Second", Artist: "Ben", Duration: "4:17", FilePath: "/music/second.flac"},
		},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(samplePlaylist())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "ID,Title,Artist,Duration,FilePath" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "First") || !strings.Contains(lines[2], "/music/second.flac") {
		t.Errorf("rows missing track data: %v", lines)
	}
}

func TestExportToMarkdown(t *testing.T) {
	t.Run("WithCover", func(t *testing.T) {
		data, err := ExportToMarkdown(samplePlaylist(), "cover.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		md := string(data)
		if !strings.HasPrefix(md, "# Evening") {
			t.Errorf("expected title heading, got %q", md)
		}
		if !strings.Contains(md, "![Cover](cover.jpg)") {
			t.Error("expected cover image reference")
		}
		if !strings.Contains(md, "1. Ana - First [3:05]") {
			t.Errorf("expected numbered track line, got %q", md)
		}
	})

	t.Run("WithoutCover", func(t *testing.T) {
		data, err := ExportToMarkdown(samplePlaylist(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(string(data), "![Cover]") {
			t.Error("no cover reference expected")
		}
	})
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(samplePlaylist())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := string(data)
	if !strings.Contains(text, "Playlist: Evening") || !strings.Contains(text, "Tracks: 2") {
		t.Errorf("expected playlist header, got %q", text)
	}
	if !strings.Contains(text, "2. Ben - Second") {
		t.Errorf("expected track lines, got %q", text)
	}
}

func TestCoverImage(t *testing.T) {
	t.Run("NoArt", func(t *testing.T) {
		if got := CoverImage(samplePlaylist()); got != nil {
			t.Errorf("expected nil, got %d bytes", len(got))
		}
	})

	t.Run("FirstArtWins", func(t *testing.T) {
		pl := samplePlaylist()
		pl.Songs[1].AlbumArt = &models.AlbumArt{
			Format: "image/jpeg",
			Data:   base64.StdEncoding.EncodeToString([]byte("jpeg-bytes")),
		}

		if got := CoverImage(pl); string(got) != "jpeg-bytes" {
			t.Errorf("expected decoded art bytes, got %q", got)
		}
	})
}

func TestWriteExports(t *testing.T) {
	t.Run("CSV", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "evening")
		path, err := WriteCSVExport(samplePlaylist(), base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != base+"_tracks.csv" {
			t.Errorf("unexpected path: %s", path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("file should exist: %v", err)
		}
	})

	t.Run("Markdown", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "export")
		pl := samplePlaylist()
		pl.Songs[0].AlbumArt = &models.AlbumArt{
			Format: "image/jpeg",
			Data:   base64.StdEncoding.EncodeToString([]byte("jpeg-bytes")),
		}

		result, err := WriteMarkdownExport(pl, dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.CoverImage == "" {
			t.Error("expected cover image to be written")
		}
		if _, err := os.Stat(filepath.Join(dir, "README.md")); err != nil {
			t.Errorf("README should exist: %v", err)
		}
	})

	t.Run("Text", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "evening.txt")
		got, err := WriteTextExport(samplePlaylist(), path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != path {
			t.Errorf("unexpected path: %s", got)
		}
	})
}
