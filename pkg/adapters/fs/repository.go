package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/scribe/pkg/core"
)

// DefaultFileName is used when no notes file is configured.
const DefaultFileName = "notes.json"

// Repository implements core.Repository over a single JSON file.
//
// Load and Save each open, use and close the file within the call.
// By default Save overwrites the file in place: a crash mid-write can
// leave a truncated file behind. Set Config.Atomic to write through a
// temporary file and rename instead.
type Repository struct {
	Path   string
	config Config

	mu       sync.RWMutex
	lastLoad *time.Time
	lastSave *time.Time
	watching bool
}

// Config holds the configuration for the file repository.
type Config struct {
	Path          string
	Atomic        bool          // Write via temp file + fsync + rename.
	Perm          os.FileMode   // Mode for newly written files. Defaults to 0644.
	WatchDebounce time.Duration // Quiet period before Watch emits. Defaults to 50ms.
	Logger        *slog.Logger
}

// NewRepository creates a new file-backed repository.
func NewRepository(config Config) *Repository {
	if config.Path == "" {
		config.Path = DefaultFileName
	}
	if config.Perm == 0 {
		config.Perm = 0644
	}
	if config.WatchDebounce <= 0 {
		config.WatchDebounce = 50 * time.Millisecond
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

var _ core.Repository = (*Repository)(nil)

// Location implements core.Locatable.
func (r *Repository) Location() string {
	return r.Path
}

// Load reads the notes file. A missing file is an empty store.
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	if err := ctx.Err(); err != nil {
		return nil, r.fail("load", err)
	}

	f, err := os.Open(r.Path)
	if errors.Is(err, fs.ErrNotExist) {
		r.config.Logger.Debug("notes file not found, starting empty", "path", r.Path)
		r.markLoaded()
		return []core.Note{}, nil
	}
	if err != nil {
		return nil, r.fail("load", err)
	}
	defer f.Close()

	notes, err := decodeNotes(f)
	if err != nil {
		return nil, r.fail("load", err)
	}

	if dup, ok := firstDuplicateID(notes); ok {
		r.config.Logger.Warn("notes file holds duplicate ids", "path", r.Path, "id", dup)
	}

	r.markLoaded()
	return notes, nil
}

// Save replaces the file contents with notes, in order.
//
// Workflow:
//  1. Encode the full sequence as an indented JSON array.
//  2. Write it: in place (truncate + write) or atomically (temp + rename).
func (r *Repository) Save(ctx context.Context, notes []core.Note) error {
	if err := ctx.Err(); err != nil {
		return r.fail("save", err)
	}

	data, err := encodeNotes(notes)
	if err != nil {
		return r.fail("save", err)
	}

	if r.config.Atomic {
		err = writeFileAtomic(r.Path, data, r.config.Perm)
	} else {
		err = os.WriteFile(r.Path, data, r.config.Perm)
	}
	if err != nil {
		return r.fail("save", err)
	}

	r.config.Logger.Debug("notes file written", "path", r.Path, "count", len(notes), "atomic", r.config.Atomic)

	now := time.Now()
	r.mu.Lock()
	r.lastSave = &now
	r.mu.Unlock()
	return nil
}

func (r *Repository) fail(op string, err error) error {
	return &core.PersistenceError{Op: op, Path: r.Path, Err: err}
}

func (r *Repository) markLoaded() {
	now := time.Now()
	r.mu.Lock()
	r.lastLoad = &now
	r.mu.Unlock()
}

func (r *Repository) absPath() (string, error) {
	abs, err := filepath.Abs(r.Path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", r.Path, err)
	}
	return abs, nil
}

func firstDuplicateID(notes []core.Note) (int, bool) {
	seen := make(map[int]bool, len(notes))
	for _, n := range notes {
		if seen[n.ID] {
			return n.ID, true
		}
		seen[n.ID] = true
	}
	return 0, false
}
