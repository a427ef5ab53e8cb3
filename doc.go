// Package scribe is the Composition Root for the Scribe note store.
//
// It connects the core domain (the ordered note sequence and its
// operations) with the persistence adapter (a single JSON file) using the
// same hexagonal layout as the rest of the module.
//
// Scribe keeps every note in memory. Add, Edit and Delete never touch the
// disk; call Save on the store before the process exits to keep changes.
//
// Usage:
//
//	store, err := scribe.Open(ctx, "notes.json",
//		scribe.WithLogger(logger),
//	)
//	if err != nil {
//		return err // a *core.PersistenceError for unreadable files
//	}
//
//	store.Add("Groceries", "Milk, eggs")
//	if store.Delete(7) == core.OutcomeNotFound {
//		// nothing to do
//	}
//	err = store.Save(ctx)
package scribe
