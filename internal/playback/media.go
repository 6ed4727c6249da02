package playback

import "context"

// Media is the audio output surface the controller drives. Implementations
// wrap whatever backend actually renders sound; the controller only cares
// about load/transport/volume commands and their success.
type Media interface {
	Load(ctx context.Context, filePath string) error
	Play() error
	Pause() error
	Stop() error
	Seek(seconds float64) error
	SetVolume(percent int) error
}

// NopMedia accepts every command and produces no sound. It keeps the
// controller usable in environments without an audio backend.
type NopMedia struct{}

func (NopMedia) Load(ctx context.Context, filePath string) error { return nil }
func (NopMedia) Play() error                                     { return nil }
func (NopMedia) Pause() error                                    { return nil }
func (NopMedia) Stop() error                                     { return nil }
func (NopMedia) Seek(seconds float64) error                      { return nil }
func (NopMedia) SetVolume(percent int) error                     { return nil }
