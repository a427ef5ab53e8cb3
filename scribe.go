package scribe

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/scribe/internal/platform"
	"github.com/aretw0/scribe/pkg/core"
)

// Version is the release of the library and CLI.
const Version = "0.3.0"

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// Store is a public alias for the core note store.
type Store = core.Store

// --- Configuration ---

// Option defines a functional option for configuring Scribe.
type Option = platform.Option

// WithLogger sets the logger for the store and its repository.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithIDPolicy selects how new notes are numbered.
func WithIDPolicy(policy core.IDPolicy) Option {
	return platform.WithIDPolicy(policy)
}

// WithClock overrides the time source used to stamp notes.
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithAtomicSave makes Save replace the notes file atomically.
func WithAtomicSave(enabled bool) Option {
	return platform.WithAtomicSave(enabled)
}

// WithReadOnly opens the store without write access.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithWatchDebounce sets the quiet period of the file watcher.
func WithWatchDebounce(d time.Duration) Option {
	return platform.WithWatchDebounce(d)
}

// --- Factory ---

// Open loads a Store from the notes file at path.
// A missing file yields an empty store.
func Open(ctx context.Context, path string, opts ...Option) (*core.Store, error) {
	return platform.Open(ctx, path, opts...)
}

// Init builds the repository for path without loading it.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}
