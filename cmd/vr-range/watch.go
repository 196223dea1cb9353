package main

import (
	"context"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/vr-range/mode"
)

// watchModes flags a reload whenever the override file changes
// The new values apply at the next round start
func (a *app) watchModes(g *errgroup.Group, ctx context.Context) {
	if a.opts.modesFile == "" {
		return
	}
	w, err := mode.NewWatcher(filepath.Dir(a.opts.modesFile))
	if err != nil {
		a.log.Warn().Err(err).Msg("mode watcher unavailable")
		return
	}
	a.watcher = w
	target := filepath.Clean(a.opts.modesFile)

	g.Go(func() error {
		for {
			select {
			case name, ok := <-w.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(name) == target {
					a.reload.Store(true)
					a.log.Debug().Str("file", name).Msg("mode file changed")
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				a.log.Warn().Err(err).Msg("mode watcher")
			case <-ctx.Done():
				return nil
			}
		}
	})
}

// stopWatch closes the watcher, which ends the watch goroutine
func (a *app) stopWatch() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
}
