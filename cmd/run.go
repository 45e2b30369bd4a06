package cmd

import (
	"github.com/bnema/cave/internal/adapters/tui"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var inline bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.Run(cmd.Context(), app.timer, app.store, tui.Options{
				Input:     cmd.InOrStdin(),
				Output:    cmd.OutOrStdout(),
				AltScreen: !inline,
			})
		},
	}

	cmd.Flags().BoolVar(&inline, "inline", false, "Render below the prompt instead of the alternate screen")

	return cmd
}
