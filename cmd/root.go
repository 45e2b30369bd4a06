package cmd

import (
	"context"

	"github.com/bnema/cave/internal/version"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func Execute() error {
	return fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version.Version),
	)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cave",
		Short:         "Countdown timer that rewards finished work with a message",
		Long:          "cave runs a countdown; when it ends and the work is done, a random message from messages.json is recorded into history.json and shown in the gallery.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.logCloser.Close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newStartCmd(app),
		newDoneCmd(app),
		newHistoryCmd(app),
		newMessagesCmd(app),
		newRunCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
