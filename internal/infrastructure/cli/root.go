package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/mealtrack/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command. Running it without a subcommand
// starts the interactive menu loop.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	var dataFile string

	var container *app.Container
	build := func(cmd *cobra.Command) (*app.Container, error) {
		if container != nil {
			return container, nil
		}
		built, err := app.BuildContainer(cmd.Context(), app.Options{
			Verbose:  opts.Verbose,
			DataFile: dataFile,
		})
		if err != nil {
			return nil, err
		}
		container = built
		return container, nil
	}

	root := &cobra.Command{
		Use:   "mealtrack",
		Short: "mealtrack - meal logging, trend analysis and recommendation",
		Long:  "mealtrack logs meals, analyzes eating patterns and recommends what to eat next.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := build(cmd)
			if err != nil {
				return err
			}
			return NewShell(c, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&dataFile, "data-file", "", "Override the meal store location")

	root.AddCommand(newAddCommand(build))
	root.AddCommand(newRecentCommand(build))
	root.AddCommand(newAnalyzeCommand(build))
	root.AddCommand(newRecommendCommand(build))
	root.AddCommand(newPlanCommand(build))
	root.AddCommand(newServeCommand(build))
	return root, nil
}
