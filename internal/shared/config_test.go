package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Library.SnapshotPath != "playlists.json" {
			t.Errorf("expected snapshot path playlists.json, got %s", config.Library.SnapshotPath)
		}

		if config.Cache.Path != "metadata.db" {
			t.Errorf("expected cache path metadata.db, got %s", config.Cache.Path)
		}

		if config.Playback.DefaultVolume != 70 {
			t.Errorf("expected default volume 70, got %d", config.Playback.DefaultVolume)
		}

		if config.Artwork.MaxWidth != 500 || config.Artwork.MaxHeight != 500 {
			t.Errorf("expected 500x500 artwork bounds, got %dx%d", config.Artwork.MaxWidth, config.Artwork.MaxHeight)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Library.SnapshotPath != defaultConfig.Library.SnapshotPath {
			t.Errorf("created config snapshot path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("expected error when config file already exists")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		content := `
[library]
snapshot_path = "/data/library.json"

[playback]
default_volume = 40
`
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if config.Library.SnapshotPath != "/data/library.json" {
			t.Errorf("expected overridden snapshot path, got %s", config.Library.SnapshotPath)
		}
		if config.Playback.DefaultVolume != 40 {
			t.Errorf("expected overridden volume, got %d", config.Playback.DefaultVolume)
		}
	})

	t.Run("LoadConfigMissingFile", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("LoadConfigInvalidTOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("not [valid toml"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfig(configPath); err == nil {
			t.Error("expected error for invalid TOML")
		}
	})
}
