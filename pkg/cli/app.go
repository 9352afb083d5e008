// Package cli implements the termbar demo commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"termbar/pkg/config"
	"termbar/pkg/display"
	"termbar/pkg/layout"
	"termbar/pkg/progress"
	"termbar/pkg/spinner"
	"termbar/pkg/wheel"
)

// App carries what every command needs.
// Mutable
type App struct {
	Cfg   config.ReadOnly
	Theme *Theme

	// Out and ErrOut override the streams chosen by the config. Tests set
	// them to buffers.
	Out    io.Writer
	ErrOut io.Writer

	Verbose bool
	Quiet   bool
}

// NewApp creates an App drawing on the stream named in cfg.
func NewApp(cfg config.ReadOnly) *App {
	return &App{
		Cfg:   cfg,
		Theme: DefaultTheme(),
	}
}

func (a *App) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	if a.Cfg.GetStream() == config.StreamStderr {
		return os.Stderr
	}
	return os.Stdout
}

func (a *App) errOut() io.Writer {
	if a.ErrOut != nil {
		return a.ErrOut
	}
	return os.Stderr
}

func (a *App) setupLogging() {
	if !a.Verbose {
		return
	}
	h := slog.NewTextHandler(a.errOut(), &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(h))
}

// newBar builds a bar from config, or a quiet stand-in with --quiet.
func (a *App) newBar(width int, title string, autoFit bool) (display.Maybe, error) {
	if a.Quiet {
		return display.Quiet(), nil
	}
	b, err := progress.New(width,
		progress.WithOutput(a.out()),
		progress.WithErrOutput(a.errOut()),
		progress.WithTitle(title),
		progress.WithAutoFit(autoFit),
		progress.WithFallbackExtra(a.Cfg.GetFallbackExtra()),
	)
	if err != nil {
		return display.Quiet(), err
	}
	slog.Debug("Created bar", "width", b.Width(), "max_width", b.MaxWidth(), "auto_fit", autoFit)
	return display.Loud(b), nil
}

// newSpinner builds a spinner from config, or a quiet stand-in.
func (a *App) newSpinner(title, glyphs string) (display.Maybe, error) {
	whl, err := wheel.FromString(glyphs)
	if err != nil {
		return display.Quiet(), fmt.Errorf("bad wheel %q: %w", glyphs, err)
	}
	if layout.CellWidth(glyphs) != layout.Len(glyphs) {
		slog.Warn("Wheel contains wide glyphs, the spinner may leave residue", "wheel", glyphs)
	}
	if a.Quiet {
		return display.Quiet(), nil
	}
	s := spinner.WithTitle(title, whl,
		spinner.WithOutput(a.out()),
		spinner.WithErrOutput(a.errOut()),
	)
	return display.Loud(s), nil
}

// outputErr returns a swallowed render error from a live indicator.
func outputErr(m display.Maybe) error {
	if e, ok := m.Unwrap().(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}
