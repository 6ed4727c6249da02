package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/resonate/internal/playback"
	"github.com/desertthunder/resonate/internal/shared"
	"github.com/desertthunder/resonate/internal/ui"
)

// Play launches the interactive terminal player.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(cmd.String("log-file"))
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	manager, err := r.manager()
	if err != nil {
		return err
	}

	controller := playback.NewController(
		playback.NopMedia{},
		manager.Library,
		r.config.Playback.DefaultVolume,
		r.logger,
	)
	manager.SetRemovalListener(controller.HandleRemoved)

	model := ui.NewModel(ctx, manager, controller)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
