// package metadata extracts title, artist, duration, and embedded cover art
// from audio files.
//
// Tag data is read with dhowden/tag, which understands ID3v1/v2, MP4, and
// Vorbis comments. Files whose headers dhowden/tag rejects get a second
// chance through bogem/id3v2 when they look like MP3s. Durations come from
// walking MP3 frames; non-MP3 containers report zero duration.
package metadata

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bogem/id3v2"
	"github.com/charmbracelet/log"
	"github.com/dhowden/tag"
	"github.com/tcolgate/mp3"

	"github.com/desertthunder/resonate/internal/models"
	"github.com/desertthunder/resonate/internal/shared"
)

// Extractor converts one audio file into structured metadata.
type Extractor interface {
	Extract(ctx context.Context, filePath string) (models.Extraction, error)
}

// TagExtractor implements Extractor over local files.
type TagExtractor struct {
	logger *log.Logger
}

// NewTagExtractor creates a TagExtractor logging through the given logger.
func NewTagExtractor(logger *log.Logger) *TagExtractor {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &TagExtractor{logger: logger}
}

// Extract reads tags and duration from the file at filePath.
// Missing tag fields fall back to the base filename and "Unknown Artist";
// an unreadable file returns an error wrapping [shared.ErrExtraction].
func (e *TagExtractor) Extract(ctx context.Context, filePath string) (models.Extraction, error) {
	if err := ctx.Err(); err != nil {
		return models.Extraction{}, err
	}

	f, err := os.Open(filePath)
	if err != nil {
		return models.Extraction{}, fmt.Errorf("%w: %v", shared.ErrExtraction, err)
	}
	defer f.Close()

	ex := models.Extraction{}

	meta, err := tag.ReadFrom(f)
	if err == nil {
		ex.Title = meta.Title()
		ex.Artist = meta.Artist()
		if pic := meta.Picture(); pic != nil && len(pic.Data) > 0 {
			ex.Art = encodeArt(pic.MIMEType, pic.Data)
		}
	} else if isMP3(filePath) {
		// dhowden/tag rejects some real-world ID3 headers; retry with id3v2.
		if fallback, ferr := readID3v2(filePath); ferr == nil {
			ex = fallback
		} else {
			return models.Extraction{}, fmt.Errorf("%w: %v", shared.ErrExtraction, err)
		}
	} else {
		return models.Extraction{}, fmt.Errorf("%w: %v", shared.ErrExtraction, err)
	}

	if ex.Title == "" {
		ex.Title = shared.BaseTitle(filePath)
	}
	if ex.Artist == "" {
		ex.Artist = models.UnknownArtist
	}

	if isMP3(filePath) {
		if _, err := f.Seek(0, io.SeekStart); err == nil {
			ex.DurationSeconds = mp3Duration(f)
		}
	}

	return ex, nil
}

// readID3v2 parses title, artist, and attached picture via bogem/id3v2.
func readID3v2(filePath string) (models.Extraction, error) {
	t, err := id3v2.Open(filePath, id3v2.Options{Parse: true})
	if err != nil {
		return models.Extraction{}, err
	}
	defer t.Close()

	ex := models.Extraction{Title: t.Title(), Artist: t.Artist()}

	for _, frame := range t.GetFrames(t.CommonID("Attached picture")) {
		if pic, ok := frame.(id3v2.PictureFrame); ok && len(pic.Picture) > 0 {
			ex.Art = encodeArt(pic.MimeType, pic.Picture)
			break
		}
	}

	return ex, nil
}

// mp3Duration sums frame durations across the stream. Undecodable frames
// terminate the walk, leaving whatever duration was accumulated.
func mp3Duration(r io.Reader) float64 {
	decoder := mp3.NewDecoder(r)

	var frame mp3.Frame
	var skipped int
	var total time.Duration

	for {
		if err := decoder.Decode(&frame, &skipped); err != nil {
			break
		}
		total += frame.Duration()
	}

	return total.Seconds()
}

func encodeArt(mimeType string, data []byte) *models.AlbumArt {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return &models.AlbumArt{
		Format: mimeType,
		Data:   base64.StdEncoding.EncodeToString(data),
	}
}

func isMP3(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	return ext == ".mp3" || ext == ".mpeg"
}
