package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type barParams struct {
	width   int
	size    string
	chunk   string
	delay   time.Duration
	title   string
	autoFit bool
	every   string
}

func newBarCommand(app *App) *cobra.Command {
	p := &barParams{}
	cmd := &cobra.Command{
		Use:   "bar",
		Short: "Simulate a transfer with a progress bar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBar(cmd, app, p)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&p.width, "width", "w", app.Cfg.GetWidth(), "Fill width of the bar")
	f.StringVar(&p.size, "size", "64MB", "Bytes to transfer")
	f.StringVar(&p.chunk, "chunk", "1MB", "Bytes per step")
	f.DurationVar(&p.delay, "delay", 40*time.Millisecond, "Pause between steps")
	f.StringVarP(&p.title, "title", "t", "starting", "Initial title")
	f.BoolVar(&p.autoFit, "autofit", app.Cfg.GetAutoFit(), "Follow the live terminal width")
	f.StringVar(&p.every, "log-every", "16MB", "Print a log line above the bar this often (0 disables)")
	return cmd
}

func runBar(cmd *cobra.Command, app *App, p *barParams) error {
	size, err := humanize.ParseBytes(p.size)
	if err != nil {
		return fmt.Errorf("invalid --size: %w", err)
	}
	chunk, err := humanize.ParseBytes(p.chunk)
	if err != nil || chunk == 0 {
		return fmt.Errorf("invalid --chunk %q", p.chunk)
	}
	every, err := humanize.ParseBytes(p.every)
	if err != nil {
		return fmt.Errorf("invalid --log-every: %w", err)
	}

	bar, err := app.newBar(p.width, p.title, p.autoFit)
	if err != nil {
		return err
	}

	pw := newProgressWriter(bar, int64(size))
	pw.logEvery = int64(every)
	if err := simulateTransfer(cmd.Context(), pw, int64(size), int64(chunk), p.delay); err != nil {
		bar.Complete()
		fmt.Fprintln(app.out(), app.Theme.Failed(err.Error()))
		return err
	}
	bar.Complete()

	fmt.Fprintln(app.out(), app.Theme.Done(fmt.Sprintf("transferred %s", humanize.Bytes(size))))
	return outputErr(bar)
}
