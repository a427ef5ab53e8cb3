package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/scribe/pkg/core"
)

// options holds the internal configuration for a Scribe store.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	adapter    string
	idPolicy   core.IDPolicy
	clock      func() time.Time
	atomic     bool
	readOnly   bool
	debounce   time.Duration
}

// Option defines a functional option for configuring Scribe.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter:  "fs",
		idPolicy: core.IDMonotonic,
	}
}

// WithLogger sets the logger for the store and its repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the path argument and file options are ignored.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter allows specifying the storage adapter to use by name.
// Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithIDPolicy selects how new notes are numbered.
// Defaults to core.IDMonotonic.
func WithIDPolicy(policy core.IDPolicy) Option {
	return func(o *options) {
		o.idPolicy = policy
	}
}

// WithClock overrides the time source used to stamp notes.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithAtomicSave makes Save write through a temporary file and rename it
// into place instead of overwriting the notes file directly.
func WithAtomicSave(enabled bool) Option {
	return func(o *options) {
		o.atomic = enabled
	}
}

// WithReadOnly opens the store without write access: Save returns
// core.ErrReadOnly. In-memory mutations are still allowed.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithWatchDebounce sets the quiet period the file watcher waits for
// before reporting a change. Zero means default (50ms).
func WithWatchDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}
