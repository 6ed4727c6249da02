// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"

	"github.com/desertthunder/resonate/internal/models"
	"github.com/desertthunder/resonate/internal/shared"
)

// MockStore is an in-memory test double for the snapshot store. It counts
// saves so tests can assert the one-write-per-mutation contract.
type MockStore struct {
	Library *models.Library
	Saves   int
	SaveErr error
	LoadErr error
}

func NewMockStore() *MockStore {
	return &MockStore{Library: models.DefaultLibrary()}
}

func (m *MockStore) Load() (*models.Library, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Library, nil
}

func (m *MockStore) Save(lib *models.Library) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saves++
	m.Library = lib
	return nil
}

// MockExtractor returns canned extractions per file path. Paths listed in
// Failures yield an extraction error instead.
type MockExtractor struct {
	Results  map[string]models.Extraction
	Failures map[string]bool
	Calls    []string
}

func NewMockExtractor() *MockExtractor {
	return &MockExtractor{
		Results:  map[string]models.Extraction{},
		Failures: map[string]bool{},
	}
}

func (m *MockExtractor) Extract(ctx context.Context, filePath string) (models.Extraction, error) {
	m.Calls = append(m.Calls, filePath)
	if m.Failures[filePath] {
		return models.Extraction{}, shared.ErrExtraction
	}
	if ex, ok := m.Results[filePath]; ok {
		return ex, nil
	}
	return models.Extraction{Title: "Mock Title", Artist: "Mock Artist", DurationSeconds: 180}, nil
}

// MockPalette returns one canned palette for every image, or an error.
type MockPalette struct {
	Palette models.NamedPalette
	Err     error
	Calls   int
}

func (m *MockPalette) ExtractPalette(ctx context.Context, imageBytes []byte) (models.NamedPalette, error) {
	m.Calls++
	if m.Err != nil {
		return models.NamedPalette{}, m.Err
	}
	return m.Palette, nil
}

// MockPicker lists a fixed set of files regardless of the folder asked for.
type MockPicker struct {
	Files []string
	Err   error
}

func (m *MockPicker) ListAudioFiles(dir string) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Files, nil
}

// ErrMock is a generic failure for wiring into doubles.
var ErrMock = errors.New("mock failure")
