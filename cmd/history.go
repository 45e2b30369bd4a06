package cmd

import (
	"encoding/json"
	"fmt"

	galleryadapter "github.com/bnema/cave/internal/adapters/render/gallery"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *app) *cobra.Command {
	var (
		asJSON bool
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the gallery of recorded messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := app.store.History()
			if asJSON {
				return writeJSON(cmd, entries)
			}

			rendered, err := app.galleryRenderer(entries, galleryadapter.RenderOptions{Limit: limit})
			if err != nil {
				return fmt.Errorf("render gallery: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the history as a JSON array")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the newest N entries")
	cmd.AddCommand(newHistoryAddCmd(app))

	return cmd
}

func newHistoryAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add MESSAGE",
		Short: "Record an explicit message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.store.Record(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("record message: %w", err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "recorded (%d entries)\n", len(app.store.History()))
			return err
		},
	}
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
