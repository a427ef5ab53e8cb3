package scribe_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/scribe"
)

func Example() {
	dir, err := os.MkdirTemp("", "scribe-example-")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	ctx := context.Background()
	path := filepath.Join(dir, "notes.json")
	clock := func() time.Time { return time.Date(2024, 1, 15, 9, 30, 0, 0, time.Local) }

	store, err := scribe.Open(ctx, path, scribe.WithClock(clock))
	if err != nil {
		panic(err)
	}

	store.Add("Groceries", "Milk, eggs")
	store.Add("Todo", "Call plumber")
	fmt.Println(store.Delete(2))
	fmt.Println(store.Delete(2))

	if err := store.Save(ctx); err != nil {
		panic(err)
	}

	reopened, err := scribe.Open(ctx, path)
	if err != nil {
		panic(err)
	}
	for _, n := range reopened.FilterByDate("2024-01-15") {
		fmt.Printf("%d %s %s\n", n.ID, n.Title, n.Timestamp)
	}

	// Output:
	// applied
	// not found
	// 1 Groceries 2024-01-15 09:30:00
}
