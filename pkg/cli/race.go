package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type raceParams struct {
	workers int
	steps   int
	width   int
}

func newRaceCommand(app *App) *cobra.Command {
	p := &raceParams{}
	cmd := &cobra.Command{
		Use:   "race",
		Short: "Drive one bar from several goroutines at once",
		Long: "race shares a single bar between workers. Frames that lose the race " +
			"for the output are dropped, never interleaved.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRace(cmd, app, p)
		},
	}
	f := cmd.Flags()
	f.IntVar(&p.workers, "workers", 4, "Concurrent workers")
	f.IntVar(&p.steps, "steps", 200, "Updates per worker")
	f.IntVarP(&p.width, "width", "w", app.Cfg.GetWidth(), "Fill width of the bar")
	return cmd
}

func runRace(cmd *cobra.Command, app *App, p *raceParams) error {
	if p.workers < 1 || p.steps < 1 {
		return fmt.Errorf("--workers and --steps must be positive")
	}
	bar, err := app.newBar(p.width, "racing", false)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	for w := 0; w < p.workers; w++ {
		g.Go(func() error {
			for i := 1; i <= p.steps; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				bar.SetTitle(fmt.Sprintf("worker %d", w))
				bar.SetProgress(float64(i) / float64(p.steps))
			}
			return nil
		})
	}
	err = g.Wait()
	bar.SetTitle("finished")
	bar.Complete()
	if err != nil {
		return err
	}

	fmt.Fprintln(app.out(), app.Theme.Done(fmt.Sprintf("%d workers, %d updates each", p.workers, p.steps)))
	return outputErr(bar)
}
