package onboarding

import "sync"

// Draft is the persisted in-progress wizard state: the three pieces the
// storefront kept in browser storage.
type Draft struct {
	Step Step  `json:"step"`
	Form *Form `json:"form"`
	Plan Plan  `json:"plan"`
}

// DraftStore persists onboarding drafts across sessions. One wizard runs at
// a time; concurrent sessions are last-write-wins.
type DraftStore interface {
	// Load returns the saved draft, or (nil, nil) when none exists.
	Load() (*Draft, error)
	Save(*Draft) error
	Clear() error
}

// MemoryDraftStore is an in-memory DraftStore for tests and for running the
// wizard without consent-independent persistence concerns.
type MemoryDraftStore struct {
	mu    sync.Mutex
	draft *Draft
}

// NewMemoryDraftStore returns an empty in-memory store.
func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{}
}

// Load implements DraftStore.
func (s *MemoryDraftStore) Load() (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft, nil
}

// Save implements DraftStore.
func (s *MemoryDraftStore) Save(d *Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = d
	return nil
}

// Clear implements DraftStore.
func (s *MemoryDraftStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
	return nil
}
