package metadata

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/resonate/internal/models"
	"github.com/desertthunder/resonate/internal/shared"
)

// Cache stores and retrieves extraction results keyed by file path + mtime.
// Implemented by [repositories.ExtractionRepository].
type Cache interface {
	Get(filePath string, modifiedAt time.Time) (*models.Extraction, error)
	Put(filePath string, modifiedAt time.Time, ex models.Extraction) error
}

// CachedExtractor wraps an Extractor with a Cache so unchanged files are
// parsed only once. Cache failures are logged and treated as misses;
// extraction correctness never depends on the cache.
type CachedExtractor struct {
	inner  Extractor
	cache  Cache
	logger *log.Logger
}

// NewCachedExtractor wraps inner with the given cache.
func NewCachedExtractor(inner Extractor, cache Cache, logger *log.Logger) *CachedExtractor {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &CachedExtractor{inner: inner, cache: cache, logger: logger}
}

// Extract consults the cache before delegating to the wrapped extractor.
// Successful extractions are written back to the cache.
func (c *CachedExtractor) Extract(ctx context.Context, filePath string) (models.Extraction, error) {
	info, statErr := os.Stat(filePath)
	if statErr == nil {
		cached, err := c.cache.Get(filePath, info.ModTime())
		if err != nil {
			c.logger.Warn("extraction cache read failed", "path", filePath, "err", err)
		} else if cached != nil {
			return *cached, nil
		}
	}

	ex, err := c.inner.Extract(ctx, filePath)
	if err != nil {
		return models.Extraction{}, err
	}

	if statErr == nil {
		if err := c.cache.Put(filePath, info.ModTime(), ex); err != nil {
			c.logger.Warn("extraction cache write failed", "path", filePath, "err", err)
		}
	}

	return ex, nil
}
