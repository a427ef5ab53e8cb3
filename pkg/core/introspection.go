package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Location       string   `json:"location,omitempty"`
	Count          int      `json:"count"`
	NextID         int      `json:"next_id"`
	IDPolicy       IDPolicy `json:"id_policy"`
	Dirty          bool     `json:"dirty"`
	ReadOnly       bool     `json:"read_only"`
	RepositoryType string   `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "repository"
	if comp, ok := s.repo.(introspection.Component); ok {
		repoType = comp.ComponentType()
	}
	location := ""
	if loc, ok := s.repo.(Locatable); ok {
		location = loc.Location()
	}

	nextID := s.nextID
	if s.config.IDPolicy == IDCount {
		nextID = len(s.notes) + 1
	}

	return StoreState{
		Location:       location,
		Count:          len(s.notes),
		NextID:         nextID,
		IDPolicy:       s.config.IDPolicy,
		Dirty:          s.dirty,
		ReadOnly:       s.config.ReadOnly,
		RepositoryType: repoType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
