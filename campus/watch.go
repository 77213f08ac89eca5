package campus

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits after the last change event
// before reloading.
const DefaultDebounce = 200 * time.Millisecond

// Watch reloads path whenever it is written, created or renamed into place,
// until ctx is cancelled. Bursts of events within debounce collapse into one
// reload; debounce <= 0 uses DefaultDebounce. A failed reload is logged and
// the previous map stays active.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file atomically are still seen.
//
// Watch blocks; run it in its own goroutine. It returns nil when ctx is
// cancelled.
func (s *Service) Watch(ctx context.Context, path string, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("campus: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("campus: watch %s: %w", path, err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("campus: watch %s: %w", path, err)
	}
	s.log.Info("watching campus map", "path", abs)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			s.log.Debug("campus map changed", "path", abs, "op", ev.Op.String())
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("campus map watcher error", "path", abs, "error", err)

		case <-timer.C:
			if err := s.LoadFile(abs); err != nil {
				s.log.Warn("campus map reload failed, keeping previous map", "path", abs, "error", err)
			}
		}
	}
}
