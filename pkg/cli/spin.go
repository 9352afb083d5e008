package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type spinParams struct {
	steps   int
	delay   time.Duration
	title   string
	wheel   string
	message string
	every   int
}

func newSpinCommand(app *App) *cobra.Command {
	p := &spinParams{}
	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Spin while pretending to work",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpin(cmd, app, p)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&p.steps, "steps", "n", 40, "Number of bumps")
	f.DurationVar(&p.delay, "delay", 80*time.Millisecond, "Pause between bumps")
	f.StringVarP(&p.title, "title", "t", "working", "Spinner title")
	f.StringVar(&p.wheel, "wheel", app.Cfg.GetWheel(), "Glyphs to cycle through")
	f.StringVarP(&p.message, "message", "m", "done", "Completion message")
	f.IntVar(&p.every, "log-every", 10, "Print a log line above the spinner every N bumps (0 disables)")
	return cmd
}

func runSpin(cmd *cobra.Command, app *App, p *spinParams) error {
	spin, err := app.newSpinner(p.title, p.wheel)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	for i := 1; i <= p.steps; i++ {
		select {
		case <-ctx.Done():
			spin.Complete()
			return ctx.Err()
		case <-time.After(p.delay):
		}
		spin.Bump()
		if p.every > 0 && i%p.every == 0 {
			spin.Println(app.Theme.Styled(app.Theme.Dim, fmt.Sprintf("step %d of %d", i, p.steps)))
		}
	}

	if s, ok := spin.Unwrap().(interface{ CompleteWith(string) }); ok {
		s.CompleteWith(app.Theme.Done(p.message))
	} else {
		spin.Complete()
	}
	return outputErr(spin)
}
