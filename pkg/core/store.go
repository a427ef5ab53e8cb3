package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// StoreConfig holds the configuration for a Store.
type StoreConfig struct {
	IDPolicy IDPolicy         // Defaults to IDMonotonic.
	Clock    func() time.Time // Defaults to time.Now.
	Logger   *slog.Logger     // Defaults to a discarding logger.
	ReadOnly bool             // Save returns ErrReadOnly.
}

// Store owns the ordered in-memory sequence of notes.
//
// Mutations (Add, Edit, Delete) touch memory only; nothing reaches the
// repository until Save is called. A process that exits without calling
// Save loses its changes.
type Store struct {
	mu     sync.RWMutex
	repo   Repository
	config StoreConfig
	notes  []Note
	nextID int
	dirty  bool
}

// NewStore creates a Store and loads the current sequence from repo.
// A load failure is returned as is (a *PersistenceError from well-behaved
// repositories) and no Store is produced.
func NewStore(ctx context.Context, repo Repository, config StoreConfig) (*Store, error) {
	if repo == nil {
		return nil, fmt.Errorf("store requires a repository")
	}
	if config.IDPolicy == "" {
		config.IDPolicy = IDMonotonic
	}
	if !config.IDPolicy.Valid() {
		return nil, fmt.Errorf("unknown id policy %q", config.IDPolicy)
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Store{repo: repo, config: config}
	if err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory sequence with the repository contents.
// On failure the in-memory sequence is left untouched.
func (s *Store) Load(ctx context.Context) error {
	notes, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = notes
	if s.notes == nil {
		s.notes = []Note{}
	}
	s.nextID = 1
	for _, n := range s.notes {
		if n.ID >= s.nextID {
			s.nextID = n.ID + 1
		}
	}
	s.dirty = false

	s.config.Logger.Debug("notes loaded", "count", len(s.notes), "next_id", s.nextID)
	return nil
}

// Save writes the full sequence, in store order, to the repository.
func (s *Store) Save(ctx context.Context) error {
	if s.config.ReadOnly {
		return ErrReadOnly
	}

	// Mutations wait for the write so dirty is only cleared for what was saved.
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]Note, len(s.notes))
	copy(snapshot, s.notes)
	if err := s.repo.Save(ctx, snapshot); err != nil {
		return err
	}
	s.dirty = false

	s.config.Logger.Debug("notes saved", "count", len(snapshot))
	return nil
}

// List returns the notes to display, in store order.
// A nil filtered slice means "all notes"; any non-nil slice (even an empty
// one) is returned as given. The result is always a fresh copy.
func (s *Store) List(filtered []Note) []Note {
	if filtered != nil {
		out := make([]Note, len(filtered))
		copy(out, filtered)
		return out
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Get returns the note with the given id.
func (s *Store) Get(id int) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.notes[i], true
	}
	return Note{}, false
}

// Len returns the number of notes currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Add appends a new note stamped with the current time and returns it.
func (s *Store) Add(title, body string) Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	var id int
	switch s.config.IDPolicy {
	case IDCount:
		id = len(s.notes) + 1
	default:
		id = s.nextID
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}

	n := Note{
		ID:        id,
		Title:     title,
		Body:      body,
		Timestamp: FormatTimestamp(s.config.Clock()),
	}
	s.notes = append(s.notes, n)
	s.dirty = true

	s.config.Logger.Debug("note added", "id", id)
	return n
}

// Edit overwrites the title and body of the note with the given id and
// refreshes its timestamp. The note keeps its id and its position.
func (s *Store) Edit(id int, title, body string) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.config.Logger.Debug("edit missed", "id", id)
		return OutcomeNotFound
	}

	s.notes[i].Title = title
	s.notes[i].Body = body
	s.notes[i].Timestamp = FormatTimestamp(s.config.Clock())
	s.dirty = true

	s.config.Logger.Debug("note edited", "id", id)
	return OutcomeApplied
}

// Delete removes the note with the given id, preserving the relative
// order of the remaining notes.
func (s *Store) Delete(id int) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.config.Logger.Debug("delete missed", "id", id)
		return OutcomeNotFound
	}

	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	s.dirty = true

	s.config.Logger.Debug("note deleted", "id", id)
	return OutcomeApplied
}

// FilterByDate returns the notes whose timestamp starts with prefix
// (normally "YYYY-MM-DD"), in store order. The prefix is not validated;
// a malformed one simply matches nothing.
func (s *Store) FilterByDate(prefix string) []Note {
	return s.filter(func(n Note) bool {
		return strings.HasPrefix(n.Timestamp, prefix)
	})
}

// FilterByTitle returns the notes whose title matches the doublestar glob
// pattern, in store order.
func (s *Store) FilterByTitle(pattern string) ([]Note, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}
	return s.filter(func(n Note) bool {
		ok, _ := doublestar.Match(pattern, n.Title)
		return ok
	}), nil
}

// Filter returns the notes that satisfy every given condition in one pass,
// in store order. An empty datePrefix or titlePattern is no condition.
func (s *Store) Filter(datePrefix, titlePattern string) ([]Note, error) {
	if titlePattern != "" && !doublestar.ValidatePattern(titlePattern) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, titlePattern)
	}
	return s.filter(func(n Note) bool {
		if !strings.HasPrefix(n.Timestamp, datePrefix) {
			return false
		}
		if titlePattern == "" {
			return true
		}
		ok, _ := doublestar.Match(titlePattern, n.Title)
		return ok
	}), nil
}

func (s *Store) filter(keep func(Note) bool) []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Note{}
	for _, n := range s.notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	return out
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(id int) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}
