package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/scribe/pkg/adapters/fs"
	"github.com/aretw0/scribe/pkg/core"
)

// Open builds the repository for uri and loads a Store from it.
//
//	store, err := scribe.Open(ctx, "notes.json", scribe.WithAtomicSave(true))
//
// The uri is adapter-specific (a file path for "fs").
func Open(ctx context.Context, uri string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo, err := newRepository(uri, o)
	if err != nil {
		return nil, err
	}

	return core.NewStore(ctx, repo, core.StoreConfig{
		IDPolicy: o.idPolicy,
		Clock:    o.clock,
		Logger:   o.logger,
		ReadOnly: o.readOnly,
	})
}

// Init builds the repository for uri without loading it.
func Init(uri string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return newRepository(uri, o)
}

func newRepository(uri string, o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}

	switch o.adapter {
	case "fs":
		return fs.NewRepository(fs.Config{
			Path:          uri,
			Atomic:        o.atomic,
			WatchDebounce: o.debounce,
			Logger:        o.logger,
		}), nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}
