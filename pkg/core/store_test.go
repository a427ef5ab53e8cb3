package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/scribe/pkg/core"
)

// MockRepository keeps the persisted sequence in memory.
type MockRepository struct {
	notes   []core.Note
	loadErr error
	saveErr error
	saves   int
}

func (m *MockRepository) Load(ctx context.Context) ([]core.Note, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]core.Note, len(m.notes))
	copy(out, m.notes)
	return out, nil
}

func (m *MockRepository) Save(ctx context.Context, notes []core.Note) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.notes = make([]core.Note, len(notes))
	copy(m.notes, notes)
	return nil
}

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	current := start.Add(-time.Second)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func newStore(t *testing.T, repo *MockRepository, policy core.IDPolicy) *core.Store {
	t.Helper()
	s, err := core.NewStore(context.Background(), repo, core.StoreConfig{
		IDPolicy: policy,
		Clock:    stepClock(time.Date(2024, 1, 15, 9, 30, 0, 0, time.Local)),
	})
	require.NoError(t, err)
	return s
}

func ids(notes []core.Note) []int {
	out := make([]int, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func TestStore_AddAssignsSequentialIDs(t *testing.T) {
	for _, policy := range []core.IDPolicy{core.IDMonotonic, core.IDCount} {
		t.Run(string(policy), func(t *testing.T) {
			s := newStore(t, &MockRepository{}, policy)
			for i := 0; i < 5; i++ {
				s.Add("title", "body")
			}
			assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(s.List(nil)))
		})
	}
}

func TestStore_AddStampsTimestamp(t *testing.T) {
	s := newStore(t, &MockRepository{}, "")

	n := s.Add("Groceries", "Milk, eggs")
	assert.Equal(t, 1, n.ID)
	assert.Equal(t, "2024-01-15 09:30:00", n.Timestamp)

	_, err := time.ParseInLocation(core.TimestampLayout, n.Timestamp, time.Local)
	assert.NoError(t, err)
}

func TestStore_Edit(t *testing.T) {
	s := newStore(t, &MockRepository{}, "")
	first := s.Add("Groceries", "Milk, eggs")
	second := s.Add("Todo", "Call plumber")

	outcome := s.Edit(first.ID, "Groceries", "Milk, eggs, bread")
	require.Equal(t, core.OutcomeApplied, outcome)

	notes := s.List(nil)
	require.Len(t, notes, 2)
	assert.Equal(t, first.ID, notes[0].ID, "edit must not reorder")
	assert.Equal(t, "Milk, eggs, bread", notes[0].Body)
	assert.GreaterOrEqual(t, notes[0].Timestamp, first.Timestamp)
	assert.NotEqual(t, first.Timestamp, notes[0].Timestamp)
	assert.Equal(t, second, notes[1], "other notes must be untouched")
}

func TestStore_EditUnknownID(t *testing.T) {
	s := newStore(t, &MockRepository{}, "")
	s.Add("a", "b")
	before := s.List(nil)

	assert.Equal(t, core.OutcomeNotFound, s.Edit(42, "x", "y"))
	assert.Equal(t, before, s.List(nil))
}

func TestStore_Delete(t *testing.T) {
	s := newStore(t, &MockRepository{}, "")
	for _, title := range []string{"a", "b", "c", "d"} {
		s.Add(title, "")
	}

	require.Equal(t, core.OutcomeApplied, s.Delete(2))
	assert.Equal(t, []int{1, 3, 4}, ids(s.List(nil)))

	// Second delete of the same id is a reported no-op.
	assert.Equal(t, core.OutcomeNotFound, s.Delete(2))
	assert.Equal(t, []int{1, 3, 4}, ids(s.List(nil)))
}

func TestStore_IDPolicyAfterDelete(t *testing.T) {
	t.Run("monotonic never reuses", func(t *testing.T) {
		s := newStore(t, &MockRepository{}, core.IDMonotonic)
		s.Add("a", "")
		s.Add("b", "")
		s.Delete(2)
		assert.Equal(t, 3, s.Add("c", "").ID)
	})

	t.Run("count reuses the last id", func(t *testing.T) {
		s := newStore(t, &MockRepository{}, core.IDCount)
		s.Add("a", "")
		s.Add("b", "")
		s.Delete(2)
		assert.Equal(t, 2, s.Add("c", "").ID)
	})

	t.Run("monotonic continues after loaded max", func(t *testing.T) {
		repo := &MockRepository{notes: []core.Note{{ID: 7}, {ID: 3}}}
		s := newStore(t, repo, core.IDMonotonic)
		assert.Equal(t, 8, s.Add("c", "").ID)
	})
}

func TestStore_FilterByDate(t *testing.T) {
	repo := &MockRepository{notes: []core.Note{
		{ID: 1, Timestamp: "2024-01-15 08:00:00"},
		{ID: 2, Timestamp: "2024-01-16 08:00:00"},
		{ID: 3, Timestamp: "2024-01-15 23:59:59"},
	}}
	s := newStore(t, repo, "")

	tests := []struct {
		prefix string
		want   []int
	}{
		{"2024-01-15", []int{1, 3}},
		{"2024-01", []int{1, 2, 3}},
		{"2023-12-31", []int{}},
		{"15/01/2024", []int{}},
		{"", []int{1, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.prefix, func(t *testing.T) {
			got := s.FilterByDate(tc.prefix)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestStore_FilterByTitle(t *testing.T) {
	repo := &MockRepository{notes: []core.Note{
		{ID: 1, Title: "work/standup"},
		{ID: 2, Title: "home/groceries"},
		{ID: 3, Title: "work/reviews/q1"},
	}}
	s := newStore(t, repo, "")

	got, err := s.FilterByTitle("work/**")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids(got))

	got, err = s.FilterByTitle("*/groceries")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids(got))

	_, err = s.FilterByTitle("work/[")
	assert.ErrorIs(t, err, core.ErrBadPattern)
}

func TestStore_FilterCombined(t *testing.T) {
	// Files written under the count policy may repeat ids.
	repo := &MockRepository{notes: []core.Note{
		{ID: 1, Title: "work", Timestamp: "2024-01-15 09:30:00"},
		{ID: 1, Title: "home", Timestamp: "2024-01-15 10:00:00"},
		{ID: 2, Title: "work", Timestamp: "2024-01-16 08:00:00"},
	}}
	s := newStore(t, repo, "")

	got, err := s.Filter("2024-01-15", "work")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, repo.notes[0], got[0])

	got, err = s.Filter("", "work")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.Filter("2024-01-15", "")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.Filter("", "")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = s.Filter("2024", "[")
	assert.ErrorIs(t, err, core.ErrBadPattern)
}

func TestStore_List(t *testing.T) {
	s := newStore(t, &MockRepository{}, "")
	s.Add("a", "")
	s.Add("b", "")

	all := s.List(nil)
	all[0].Title = "mutated"
	assert.Equal(t, "a", s.List(nil)[0].Title, "List must return a copy")

	assert.Empty(t, s.List([]core.Note{}), "an empty filter shows nothing")

	subset := s.FilterByDate("2024-01-15 09:30:01")
	assert.Equal(t, []int{2}, ids(s.List(subset)))
}

func TestStore_Get(t *testing.T) {
	s := newStore(t, &MockRepository{}, "")
	s.Add("a", "body")

	n, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "body", n.Body)

	_, ok = s.Get(2)
	assert.False(t, ok)
}

func TestStore_SaveIsExplicit(t *testing.T) {
	repo := &MockRepository{}
	s := newStore(t, repo, "")

	s.Add("a", "")
	s.Edit(1, "b", "")
	assert.Zero(t, repo.saves, "mutations must not auto-save")
	assert.Empty(t, repo.notes)

	require.NoError(t, s.Save(context.Background()))
	assert.Equal(t, 1, repo.saves)
	require.Len(t, repo.notes, 1)
	assert.Equal(t, "b", repo.notes[0].Title)
}

func TestStore_LoadErrorPropagates(t *testing.T) {
	loadErr := &core.PersistenceError{Op: "load", Path: "notes.json", Err: core.ErrMalformed}
	_, err := core.NewStore(context.Background(), &MockRepository{loadErr: loadErr}, core.StoreConfig{})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrPersistence)
	assert.ErrorIs(t, err, core.ErrMalformed)
}

func TestStore_SaveErrorKeepsDirty(t *testing.T) {
	repo := &MockRepository{}
	s := newStore(t, repo, "")
	s.Add("a", "")

	repo.saveErr = &core.PersistenceError{Op: "save", Path: "notes.json", Err: errors.New("disk full")}
	err := s.Save(context.Background())
	assert.ErrorIs(t, err, core.ErrPersistence)

	state := s.State().(core.StoreState)
	assert.True(t, state.Dirty)
}

func TestStore_ReadOnly(t *testing.T) {
	repo := &MockRepository{}
	s, err := core.NewStore(context.Background(), repo, core.StoreConfig{ReadOnly: true})
	require.NoError(t, err)

	s.Add("a", "")
	assert.ErrorIs(t, s.Save(context.Background()), core.ErrReadOnly)
	assert.Zero(t, repo.saves)
}

func TestStore_UnknownPolicy(t *testing.T) {
	_, err := core.NewStore(context.Background(), &MockRepository{}, core.StoreConfig{IDPolicy: "random"})
	assert.Error(t, err)
}

func TestStore_State(t *testing.T) {
	s := newStore(t, &MockRepository{}, core.IDCount)
	s.Add("a", "")

	state, ok := s.State().(core.StoreState)
	require.True(t, ok)
	assert.Equal(t, 1, state.Count)
	assert.Equal(t, 2, state.NextID)
	assert.Equal(t, core.IDCount, state.IDPolicy)
	assert.True(t, state.Dirty)
	assert.Equal(t, "store", s.ComponentType())
}
