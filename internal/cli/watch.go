package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/meetbot/internal/audio"
	"github.com/nguyentantai21042004/meetbot/internal/logger"
	"github.com/nguyentantai21042004/meetbot/internal/output"
	"github.com/nguyentantai21042004/meetbot/internal/watcher"
)

func NewWatchCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dir]",
		Short: "Analyze every new recording dropped into a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, application, cfg, err := deps.setup(cmd)
			if err != nil {
				return err
			}

			dir := cfg.Watch.Input
			if len(args) == 1 {
				dir = args[0]
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create directory %s: %w", dir, err)
			}

			f := output.NewFormatter(deps.Stdout)
			handler := func(ctx context.Context, path string) error {
				// one run id per recording
				ctx = logger.WithRunID(ctx, uuid.NewString())
				res := application.Analyzer.Analyze(ctx, audio.Asset{Path: path})
				f.Bundle(res.Bundle, res.RecordPath)
				return nil
			}

			w, err := watcher.New(dir, handler, application.Logger, cfg.Watch.MaxConcurrent, cfg.Watch.SettleDelay)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			application.Logger.Info(ctx, "Watching %s, press Ctrl+C to stop", dir)
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			application.Logger.Info(ctx, "Watcher stopped")
			return nil
		},
	}
}
