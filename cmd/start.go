package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	countdownadapter "github.com/bnema/cave/internal/adapters/render/countdown"
	galleryadapter "github.com/bnema/cave/internal/adapters/render/gallery"
	"github.com/bnema/cave/internal/application"
	"github.com/bnema/cave/internal/domain"
	"github.com/spf13/cobra"
)

var errCountdownCancelled = errors.New("countdown cancelled")

type startOptions struct {
	done     bool
	noPrompt bool
	plain    bool
}

func newStartCmd(app *app) *cobra.Command {
	opts := startOptions{}

	cmd := &cobra.Command{
		Use:   "start DURATION",
		Short: "Run a countdown (MM:SS or seconds, at least 5)",
		Example: `  cave start 25:00
  cave start 90 --done`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.done, "done", false, "Record a message as soon as the countdown ends")
	cmd.Flags().BoolVar(&opts.noPrompt, "no-prompt", false, "Finish without asking whether the work is done")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print one line per second instead of a live view")
	cmd.MarkFlagsMutuallyExclusive("done", "no-prompt")

	return cmd
}

func runStart(cmd *cobra.Command, app *app, input string, opts startOptions) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	events := make(chan domain.CountdownState, 4)
	push := func(state domain.CountdownState) {
		select {
		case events <- state:
		case <-ctx.Done():
		}
	}
	app.timer.SetListener(application.TimerListenerFuncs{Tick: push, Cancel: push})
	defer app.timer.SetListener(nil)

	initial, err := app.timer.Start(ctx, input)
	if err != nil {
		return fmt.Errorf("%s: %w", countdownadapter.ErrorLabel(err), err)
	}

	wait := runCountdownProgress
	if opts.plain {
		wait = waitCountdownPlain
	}

	final, err := wait(ctx, cmd.OutOrStdout(), initial, events)
	if err != nil {
		app.timer.Cancel()
		return fmt.Errorf("wait for countdown: %w", err)
	}
	if final.Phase != domain.PhaseCompleted {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), countdownadapter.CancelledLabel)
		return errCountdownCancelled
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), countdownadapter.CompletedLabel); err != nil {
		return err
	}

	if opts.noPrompt {
		app.timer.Reset()
		return nil
	}

	record := opts.done
	if !record {
		record, err = confirmDone(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	app.timer.Reset()
	if !record {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), countdownadapter.CancelledLabel)
		return err
	}

	return recordAndPrint(cmd, app)
}

func confirmDone(in io.Reader, out io.Writer) (bool, error) {
	_, _ = fmt.Fprint(out, "Дело сделано? [y/N]: ")

	reader := bufio.NewReader(in)
	answer, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "д", "да":
		return true, nil
	default:
		return false, nil
	}
}

func recordAndPrint(cmd *cobra.Command, app *app) error {
	message, err := app.store.Complete(cmd.Context())
	if err != nil {
		return fmt.Errorf("record message: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), galleryadapter.SanitizeForTerminal(message))
	return err
}

func newDoneCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done",
		Short: "Record a random message now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return recordAndPrint(cmd, app)
		},
	}
}
