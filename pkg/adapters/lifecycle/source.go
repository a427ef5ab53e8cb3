// Package lifecycle exposes notes file events as a lifecycle.Source.
package lifecycle

import (
	"context"
	"log/slog"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/scribe/pkg/core"
)

type watchSource struct {
	in     <-chan core.Event
	out    chan lifecycle.Event
	logger *slog.Logger
}

// NewSource wraps a channel of notes file events, such as the one returned
// by fs.Repository.Watch. Events() is closed once the input channel closes
// or the context given to Start is done.
func NewSource(events <-chan core.Event, logger *slog.Logger) lifecycle.Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &watchSource{
		in:     events,
		out:    make(chan lifecycle.Event),
		logger: logger,
	}
}

func (s *watchSource) Events() <-chan lifecycle.Event {
	return s.out
}

// Start forwards events until the input is drained or ctx is done.
// It returns immediately; forwarding runs on a tracked goroutine.
func (s *watchSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, s.forward, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("event forwarding stopped", "error", err)
	}))
	return nil
}

func (s *watchSource) forward(ctx context.Context) error {
	defer close(s.out)
	for {
		var e core.Event
		var ok bool
		select {
		case <-ctx.Done():
			return nil
		case e, ok = <-s.in:
			if !ok {
				return nil
			}
		}

		s.logger.Debug("forwarding notes event", "type", e.Type, "path", e.Path)
		select {
		case s.out <- e:
		case <-ctx.Done():
			return nil
		}
	}
}
