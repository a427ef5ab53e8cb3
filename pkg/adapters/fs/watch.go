package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/scribe/pkg/core"
)

// Watch observes the notes file and emits one event per settled change.
//
// The parent directory is watched rather than the file itself so that
// atomic saves (rename over the target) and recreation after deletion are
// still seen. Events for other files in the directory, including the
// temporary files of atomic saves, are dropped. Bursts within the debounce
// window collapse into the last event.
//
// The returned channel is closed when ctx is done or the watcher fails.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	target, err := r.absPath()
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	events := make(chan core.Event)
	r.setWatching(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer r.setWatching(false)
		defer close(events)
		defer watcher.Close()
		return r.watchLoop(ctx, watcher, target, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watcher stopped", "path", r.Path, "error", err)
	}))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, target string, events chan<- core.Event) error {
	timer := time.NewTimer(r.config.WatchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	var pending *core.Event

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			eType := mapEventType(event)
			if eType == "" {
				continue
			}
			r.config.Logger.Debug("notes file event", "op", event.Op.String())
			pending = &core.Event{Type: eType, Path: r.Path, Timestamp: time.Now().Unix()}
			timer.Reset(r.config.WatchDebounce)

		case <-timer.C:
			if pending == nil {
				continue
			}
			select {
			case events <- *pending:
			case <-ctx.Done():
				return nil
			}
			pending = nil

		case wErr, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			r.config.Logger.Error("fsnotify error", "error", wErr)
		}
	}
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

func (r *Repository) setWatching(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watching = active
}
