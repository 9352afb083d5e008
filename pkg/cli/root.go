package cli

import (
	"fmt"

	"termbar/pkg/config"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the demo command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "termbar",
		Short:         "Single-line progress bars and spinners",
		Long:          "termbar demonstrates in-place terminal progress bars and spinners.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.setupLogging()
		},
	}

	root.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log debug output to stderr")
	root.PersistentFlags().BoolVarP(&app.Quiet, "quiet", "q", false, "Run without drawing any indicator")

	root.AddCommand(
		newBarCommand(app),
		newSpinCommand(app),
		newRaceCommand(app),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.GetBuildInfo())
		},
	}
}
