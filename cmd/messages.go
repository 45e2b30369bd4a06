package cmd

import (
	"errors"
	"fmt"
	"os"

	galleryadapter "github.com/bnema/cave/internal/adapters/render/gallery"
	"github.com/bnema/cave/internal/adapters/repo/jsonfile"
	"github.com/bnema/cave/internal/domain"
	"github.com/spf13/cobra"
)

var errMessagesExist = errors.New("messages file already exists")

func newMessagesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List the message pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			messages := app.store.Messages()
			if asJSON {
				return writeJSON(cmd, messages)
			}

			for _, message := range messages {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), galleryadapter.SanitizeForTerminal(message)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the pool as a JSON array")
	cmd.AddCommand(newMessagesPickCmd(app), newMessagesInitCmd(app))

	return cmd
}

func newMessagesPickCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Draw one message without recording it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), galleryadapter.SanitizeForTerminal(app.store.PickMessage()))
			return err
		},
	}
}

func newMessagesInitCmd(app *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [MESSAGE...]",
		Short: "Write messages.json with the given messages or the default pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.config.Messages.Path
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%w: %s", errMessagesExist, path)
				} else if !errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("stat messages file: %w", err)
				}
			}

			messages := domain.NormalizeMessages(args)
			if err := jsonfile.WriteMessages(path, messages); err != nil {
				return fmt.Errorf("write messages file: %w", err)
			}

			if _, err := app.store.LoadMessages(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %d messages to %s\n", len(messages), path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing messages file")

	return cmd
}
