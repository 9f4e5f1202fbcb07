package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-knobs/knobs/pkg/params"
	"github.com/go-knobs/knobs/pkg/poll"
)

func newWatchCommand(opts *globalOptions) *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "watch <file.yaml>",
		Short: "Poll a panel document and log constrained value changes",
		Long: `Bind every input of a panel document and poll it. Edits to the file are
loaded into the bound values on the poll loop; each change is logged after
the input constraints applied.

Example:
  knobs watch panel.yaml --interval 500ms`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, opts, args[0], interval)
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", poll.DefaultInterval, "poll interval")
	return cmd
}

func runWatch(ctx context.Context, opts *globalOptions, path string, interval time.Duration) error {
	p, doc, err := opts.newPane(path)
	if err != nil {
		return err
	}
	defer p.Dispose()

	logger := opts.logger()
	for _, b := range p.Bindings() {
		key := b.Key()
		b.OnChange(func(raw any) {
			logger.Info().Str("key", key).Interface("value", raw).Msg("value changed")
		})
	}

	poller := poll.New(p, poll.WithInterval(interval), poll.WithLogger(logger))
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return poller.Run(ctx)
	})
	g.Go(func() error {
		return watchFile(ctx, path, interval, logger, func(next *params.Document) {
			poller.Dispatch(func() {
				for key, v := range next.Values {
					if _, ok := doc.Values[key]; ok {
						doc.Values[key] = v
					}
				}
			})
		})
	})
	logger.Info().Str("file", path).Int("inputs", len(p.Bindings())).Msg("watching")
	return g.Wait()
}

// watchFile reloads path whenever its modification time changes and hands
// the parsed document to onChange. Unreadable revisions are logged and
// skipped.
func watchFile(ctx context.Context, path string, interval time.Duration, logger zerolog.Logger, onChange func(*params.Document)) error {
	if interval <= 0 {
		interval = poll.DefaultInterval
	}
	var modTime time.Time
	if fi, err := os.Stat(path); err == nil {
		modTime = fi.ModTime()
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
		fi, err := os.Stat(path)
		if err != nil {
			logger.Warn().Err(err).Msg("stat failed")
			continue
		}
		if fi.ModTime().Equal(modTime) {
			continue
		}
		modTime = fi.ModTime()
		doc, err := params.LoadDocument(path)
		if err != nil {
			logger.Warn().Err(err).Msg("reload failed")
			continue
		}
		logger.Debug().Str("file", path).Msg("reloaded")
		onChange(doc)
	}
}
