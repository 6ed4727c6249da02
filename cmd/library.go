package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/resonate/internal/formatter"
	"github.com/desertthunder/resonate/internal/repositories"
	"github.com/desertthunder/resonate/internal/shared"
)

// Setup writes the default config file and prepares the extraction cache.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		r.logger.Warn("config file not created", "path", configPath, "err", err)
	} else {
		r.writePlainln("✓ Config written to %s", configPath)
	}

	db, err := shared.NewDatabase(r.config.Cache.Path)
	if err != nil {
		return fmt.Errorf("failed to open extraction cache: %w", err)
	}
	defer db.Close()

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to migrate extraction cache: %w", err)
	}

	r.writePlainln("✓ Extraction cache ready at %s", r.config.Cache.Path)
	return nil
}

// LibraryList prints every playlist with its tracks.
func (r *Runner) LibraryList(ctx context.Context, cmd *cli.Command) error {
	m, err := r.manager()
	if err != nil {
		return err
	}

	lib := m.Library()
	if cmd.Bool("json") {
		return r.writeJSON(lib, cmd.Bool("pretty"))
	}

	for _, pl := range lib.Playlists {
		r.writePlainln("%s (%d tracks) [%s]", pl.Name, len(pl.Songs), pl.ID)
		for _, track := range pl.Songs {
			r.writePlainln("  %s — %s (%s) [%s]", track.Title, track.Artist, track.Duration, track.ID)
		}
	}
	return nil
}

// LibraryCreate creates an empty playlist.
func (r *Runner) LibraryCreate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return shared.ErrEmptyName
	}

	m, err := r.manager()
	if err != nil {
		return err
	}

	pl, err := m.CreatePlaylist(name)
	if err != nil {
		return err
	}

	r.writePlainln("✓ Created playlist '%s' [%s]", pl.Name, pl.ID)
	return nil
}

// LibraryDelete removes a playlist by id.
func (r *Runner) LibraryDelete(ctx context.Context, cmd *cli.Command) error {
	m, err := r.manager()
	if err != nil {
		return err
	}

	id := cmd.String("id")
	if err := m.DeletePlaylist(id); err != nil {
		return err
	}

	r.writePlainln("✓ Deleted playlist %s", id)
	return nil
}

// LibraryImport ingests a folder into a new playlist.
func (r *Runner) LibraryImport(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.StringArg("dir")
	if dir == "" {
		return fmt.Errorf("folder path is required")
	}

	m, err := r.manager()
	if err != nil {
		return err
	}

	res, err := m.ImportFolder(ctx, dir)
	if err != nil {
		return err
	}

	r.writePlainln("✓ Imported %d tracks into '%s' [%s]", res.Imported, res.Playlist.Name, res.Playlist.ID)
	if res.Fallbacks > 0 {
		r.writePlainln("  %d file(s) had unreadable metadata and were added with fallback fields", res.Fallbacks)
	}
	return nil
}

// LibraryAdd ingests the given files into an existing playlist.
func (r *Runner) LibraryAdd(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("at least one audio file is required")
	}

	m, err := r.manager()
	if err != nil {
		return err
	}

	res, err := m.AddTracks(ctx, cmd.String("playlist"), paths)
	if err != nil {
		return err
	}

	r.writePlainln("✓ Added %d tracks to '%s'", res.Imported, res.Playlist.Name)
	if res.Fallbacks > 0 {
		r.writePlainln("  %d file(s) had unreadable metadata and were added with fallback fields", res.Fallbacks)
	}
	return nil
}

// LibraryRemove deletes one track from a playlist.
func (r *Runner) LibraryRemove(ctx context.Context, cmd *cli.Command) error {
	m, err := r.manager()
	if err != nil {
		return err
	}

	if err := m.DeleteTrack(cmd.String("playlist"), cmd.String("track")); err != nil {
		return err
	}

	r.writePlainln("✓ Removed track %s", cmd.String("track"))
	return nil
}

// LibraryExport writes one playlist to the chosen format.
func (r *Runner) LibraryExport(ctx context.Context, cmd *cli.Command) error {
	m, err := r.manager()
	if err != nil {
		return err
	}

	pl := m.Library().Playlist(cmd.String("id"))
	if pl == nil {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, cmd.String("id"))
	}

	output := cmd.String("output")
	switch cmd.String("format") {
	case "csv":
		path, err := formatter.WriteCSVExport(pl, output)
		if err != nil {
			return err
		}
		r.writePlainln("✓ Exported to %s", path)
	case "markdown", "md":
		result, err := formatter.WriteMarkdownExport(pl, output)
		if err != nil {
			return err
		}
		r.writePlainln("✓ Exported to %s", result.Directory)
	case "text", "txt":
		path, err := formatter.WriteTextExport(pl, output)
		if err != nil {
			return err
		}
		r.writePlainln("✓ Exported to %s", path)
	default:
		return fmt.Errorf("unknown export format: %s", cmd.String("format"))
	}

	return nil
}

// CachePrune drops extraction cache rows whose files are gone from disk.
func (r *Runner) CachePrune(ctx context.Context, cmd *cli.Command) error {
	db := r.db
	if db == nil {
		opened, err := shared.NewDatabase(r.config.Cache.Path)
		if err != nil {
			return fmt.Errorf("failed to open extraction cache: %w", err)
		}
		defer opened.Close()
		if err := shared.RunMigrations(opened); err != nil {
			return fmt.Errorf("failed to migrate extraction cache: %w", err)
		}
		db = opened
	}

	repo := repositories.NewExtractionRepository(db)
	removed, err := repo.Prune(func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	})
	if err != nil {
		return err
	}

	r.writePlainln("✓ Pruned %d stale cache entries", removed)
	return nil
}
