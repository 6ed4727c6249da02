package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Library validation errors
	ErrEmptyName        = fmt.Errorf("playlist name is empty")
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")
	ErrTrackNotFound    = fmt.Errorf("track not found")
	ErrNoAudioFiles     = fmt.Errorf("no audio files found")

	// Extraction errors (per-file, absorbed into fallback tracks)
	ErrExtraction = fmt.Errorf("metadata extraction failed")
	ErrPalette    = fmt.Errorf("palette extraction failed")
	ErrNoArtwork  = fmt.Errorf("no embedded artwork")

	// Persistence errors
	ErrSnapshotNotFound = fmt.Errorf("library snapshot not found")
	ErrPersistence      = fmt.Errorf("persistence failed")

	// Playback errors (never propagate past the controller)
	ErrPlayback = fmt.Errorf("media playback failed")
	ErrNoTrack  = fmt.Errorf("no track selected")
)
