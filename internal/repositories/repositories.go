// package repositories provides persistence layer implementations backed by SQLite.
//
// The extraction repository caches per-file metadata extraction results so
// re-importing a folder does not re-parse unchanged audio files.
package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/resonate/internal/models"
)

// CachedExtraction is one cached extraction row, keyed by file path and
// invalidated when the file's mtime changes.
type CachedExtraction struct {
	FilePath   string
	ModifiedAt int64 // unix seconds of the file's mtime at extraction time
	Result     models.Extraction
}

// ExtractionRepository caches metadata extraction results in SQLite.
type ExtractionRepository struct {
	db *sql.DB
}

// NewExtractionRepository creates a new ExtractionRepository with the given database connection
func NewExtractionRepository(db *sql.DB) *ExtractionRepository {
	return &ExtractionRepository{db: db}
}

// Get retrieves a cached extraction for the file, but only if the cached
// mtime matches; a stale row behaves as a miss.
func (r *ExtractionRepository) Get(filePath string, modifiedAt time.Time) (*models.Extraction, error) {
	query := `
		SELECT title, artist, duration_seconds, art_format, art_data
		FROM extractions
		WHERE file_path = ? AND modified_at = ?
	`

	var (
		title     string
		artist    string
		duration  float64
		artFormat sql.NullString
		artData   []byte
	)

	err := r.db.QueryRow(query, filePath, modifiedAt.Unix()).Scan(&title, &artist, &duration, &artFormat, &artData)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan extraction: %w", err)
	}

	ex := models.Extraction{
		Title:           title,
		Artist:          artist,
		DurationSeconds: duration,
	}
	if artFormat.Valid && len(artData) > 0 {
		ex.Art = &models.AlbumArt{Format: artFormat.String, Data: string(artData)}
	}

	return &ex, nil
}

// Put stores an extraction result, replacing any previous row for the file.
func (r *ExtractionRepository) Put(filePath string, modifiedAt time.Time, ex models.Extraction) error {
	query := `
		INSERT INTO extractions (file_path, modified_at, title, artist, duration_seconds, art_format, art_data)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (file_path) DO UPDATE SET
			modified_at = excluded.modified_at,
			title = excluded.title,
			artist = excluded.artist,
			duration_seconds = excluded.duration_seconds,
			art_format = excluded.art_format,
			art_data = excluded.art_data
	`

	var artFormat sql.NullString
	var artData []byte
	if ex.Art != nil {
		artFormat = sql.NullString{String: ex.Art.Format, Valid: true}
		artData = []byte(ex.Art.Data)
	}

	if _, err := r.db.Exec(query, filePath, modifiedAt.Unix(), ex.Title, ex.Artist, ex.DurationSeconds, artFormat, artData); err != nil {
		return fmt.Errorf("failed to cache extraction: %w", err)
	}

	return nil
}

// Prune removes cached rows for files that no longer exist according to
// the provided predicate. Returns the number of rows removed.
func (r *ExtractionRepository) Prune(exists func(path string) bool) (int, error) {
	rows, err := r.db.Query("SELECT file_path FROM extractions")
	if err != nil {
		return 0, fmt.Errorf("failed to query extractions: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return 0, fmt.Errorf("failed to scan extraction path: %w", err)
		}
		if !exists(path) {
			stale = append(stale, path)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("row iteration error: %w", err)
	}

	for _, path := range stale {
		if _, err := r.db.Exec("DELETE FROM extractions WHERE file_path = ?", path); err != nil {
			return 0, fmt.Errorf("failed to prune extraction: %w", err)
		}
	}

	return len(stale), nil
}
