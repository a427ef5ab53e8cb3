package core_test

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/scribe/pkg/core"
)

func TestStore_ConcurrentAccess(t *testing.T) {
	repo := &MockRepository{}
	s, err := core.NewStore(context.Background(), repo, core.StoreConfig{})
	require.NoError(t, err)

	const writers, perWriter = 8, 25

	var g errgroup.Group
	for w := 0; w < writers; w++ {
		g.Go(func() error {
			for i := 0; i < perWriter; i++ {
				n := s.Add(fmt.Sprintf("w%d-%d", w, i), "")
				if got, ok := s.Get(n.ID); !ok || got.Title != n.Title {
					return fmt.Errorf("note %d not readable after add", n.ID)
				}
			}
			return nil
		})
		g.Go(func() error {
			for i := 0; i < perWriter; i++ {
				_ = s.List(nil)
				_ = s.FilterByDate("2")
				_ = s.State()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	notes := s.List(nil)
	require.Len(t, notes, writers*perWriter)

	got := ids(notes)
	sort.Ints(got)
	for i, id := range got {
		assert.Equal(t, i+1, id, "ids must be unique and contiguous")
	}

	require.NoError(t, s.Save(context.Background()))
	assert.Len(t, repo.notes, writers*perWriter)
}
