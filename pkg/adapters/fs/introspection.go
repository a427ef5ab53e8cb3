package fs

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path     string     `json:"path"`
	Exists   bool       `json:"exists"`
	Size     int64      `json:"size"`
	Atomic   bool       `json:"atomic"`
	Watching bool       `json:"watching"`
	LastLoad *time.Time `json:"last_load,omitempty"`
	LastSave *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state := RepositoryState{
		Path:     r.Path,
		Atomic:   r.config.Atomic,
		Watching: r.watching,
		LastLoad: r.lastLoad,
		LastSave: r.lastSave,
	}
	if info, err := os.Stat(r.Path); err == nil {
		state.Exists = true
		state.Size = info.Size()
	} else if !errors.Is(err, fs.ErrNotExist) {
		state.Exists = true
	}
	return state
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "json-file"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
