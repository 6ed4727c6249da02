package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/resonate/internal/library"
	"github.com/desertthunder/resonate/internal/metadata"
	"github.com/desertthunder/resonate/internal/palette"
	"github.com/desertthunder/resonate/internal/picker"
	"github.com/desertthunder/resonate/internal/shared"
	"github.com/desertthunder/resonate/internal/store"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config    *shared.Config
	store     library.Store
	extractor metadata.Extractor
	colors    palette.Extractor
	files     picker.Picker
	db        *sql.DB
	logger    *log.Logger
	output    io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config    *shared.Config
	Store     library.Store
	Extractor metadata.Extractor
	Colors    palette.Extractor
	Files     picker.Picker
	DB        *sql.DB
	Logger    *log.Logger
	Output    io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Store == nil {
		opts.Store = store.NewSnapshotStore(opts.Config.Library.SnapshotPath)
	}
	if opts.Extractor == nil {
		opts.Extractor = metadata.NewTagExtractor(opts.Logger)
	}
	if opts.Colors == nil {
		opts.Colors = palette.NewKMeansExtractor(opts.Config.Artwork.MaxWidth, opts.Config.Artwork.MaxHeight)
	}
	if opts.Files == nil {
		opts.Files = picker.DirectoryPicker{}
	}

	return &Runner{
		config:    opts.Config,
		store:     opts.Store,
		extractor: opts.Extractor,
		colors:    opts.Colors,
		files:     opts.Files,
		db:        opts.DB,
		logger:    opts.Logger,
		output:    opts.Output,
	}
}

// SetLogger swaps the runner's logger, used when the TUI takes the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// manager loads the library snapshot and builds the mutation layer over it.
func (r *Runner) manager() (*library.Manager, error) {
	return library.NewManager(r.store, r.extractor, r.colors, r.files, r.logger)
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, libraryCommand, cacheCommand, playCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
