// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch model.txt",
		Short: "Solve a model again every time the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()
			run := func() error {
				fmt.Fprintf(out, "\n=== %s (%s) ===\n", path, time.Now().Format(time.TimeOnly))
				return a.solve(out, path)
			}

			return watch(cmd.Context(), path, a.cfg.Watch.Debounce, run, a.log)
		},
	}
}

// watch calls run once, then again after every burst of writes to path,
// until ctx is done. Failures of run are logged, not returned.
//
// The parent directory is watched so editors that replace the file by
// rename are still seen.
func watch(ctx context.Context, path string, debounce time.Duration, run func() error, log *zap.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err = w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	attempt := func() {
		if err := run(); err != nil {
			log.Error("solve failed", zap.String("model", target), zap.Error(err))
		}
	}
	attempt()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			log.Debug("model changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			attempt()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))
		}
	}
}
