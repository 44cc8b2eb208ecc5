package planner

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/dagaz/internal/blob"
)

// Watch starts an fsnotify watcher on the file-driver data directory and
// calls cb whenever one of the planner's blob files changes on disk,
// until ctx is cancelled. Bursts are debounced so an external editor
// saving a file fires cb once.
//
// The planner's own atomic writes also land here; that is harmless, a
// spurious reload callback just re-renders current state.
func Watch(ctx context.Context, root string, logger *slog.Logger, cb func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(root); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", root))

	var debounce *time.Timer
	var fire <-chan time.Time

	schedule := func() {
		if debounce == nil {
			debounce = time.NewTimer(200 * time.Millisecond)
			fire = debounce.C
		} else {
			debounce.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-fire:
			if cb != nil {
				cb()
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			// Temp files from our own atomic writes start with a dot.
			if strings.HasPrefix(name, ".") {
				continue
			}
			if name != blob.KeyEvents && name != blob.KeyWorkEmail {
				continue
			}
			logger.Debug("watcher: blob changed",
				slog.String("key", name),
				slog.String("op", ev.Op.String()))
			schedule()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher: error", slog.String("error", err.Error()))
		}
	}
}
