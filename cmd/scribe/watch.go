package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	scribelifecycle "github.com/aretw0/scribe/pkg/adapters/lifecycle"
	"github.com/aretw0/scribe/pkg/core"
)

// watcher is implemented by repositories that can report file changes.
type watcher interface {
	Watch(ctx context.Context) (<-chan core.Event, error)
}

func newWatchCmd(a *app) *cobra.Command {
	var count int

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Print a line each time the notes file changes",
		Long: `Watch follows the notes file and reloads it after every change made by
another process, printing the change and the resulting note count.
It runs until interrupted, or until --count events have been seen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store, repo, err := a.openStore(ctx, true)
			if err != nil {
				return err
			}
			w, ok := repo.(watcher)
			if !ok {
				return usageErrorf("repository %T does not support watching", repo)
			}

			events, err := w.Watch(ctx)
			if err != nil {
				return fmt.Errorf("watch notes file: %w", err)
			}

			src := scribelifecycle.NewSource(events, a.logger)
			if err := src.Start(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Watching %s (%d notes)\n", a.notesFile(), store.Len())

			seen := 0
			for e := range src.Events() {
				if err := store.Load(ctx); err != nil {
					// A writer may be mid-save; keep the last good state.
					a.logger.Warn("reload failed", "error", err)
					fmt.Fprintf(out, "%s (unreadable)\n", e)
				} else {
					fmt.Fprintf(out, "%s (%d notes)\n", e, store.Len())
				}

				seen++
				if count > 0 && seen >= count {
					stop()
					break
				}
			}
			return nil
		},
	}

	watchCmd.Flags().IntVar(&count, "count", 0, "Exit after this many changes (0 watches until interrupted)")
	return watchCmd
}
