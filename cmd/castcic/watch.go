package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/castcic-lang/castcic/internal/types"
)

// runWatch re-drives reduce on path every time it is written, until ctx
// is cancelled (SIGINT). A write that arrives while a previous
// reduction is still running cancels that reduction rather than
// queuing behind it — only the latest edit matters.
func runWatch(ctx context.Context, logger *slog.Logger, variant types.Variant, fuel int, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target := filepath.Clean(path)
	fmt.Printf("watching %s (ctrl-c to stop)\n", path)

	var cancelRun context.CancelFunc
	runOnce := func() {
		if cancelRun != nil {
			cancelRun()
		}
		runCtx, cancel := context.WithCancel(ctx)
		cancelRun = cancel
		go func() {
			if err := runReduce(runCtx, logger, variant, fuel, path); err != nil {
				if runCtx.Err() == nil {
					fmt.Println(err)
				}
			}
		}()
	}

	runOnce()

	for {
		select {
		case <-ctx.Done():
			if cancelRun != nil {
				cancelRun()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Info("file changed, re-reducing", "path", path, "op", event.Op.String())
			runOnce()
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", "error", werr)
		}
	}
}
