package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"gitlab.com/dirk.krummacker/contacts-app/internal/model"
)

// MemoryStore holds the contacts in process memory. Nothing survives a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	contacts []model.Contact
	now      func() time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) List(_ context.Context, query string) ([]model.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]model.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if c.Matches(query) {
			result = append(result, c)
		}
	}
	slices.SortStableFunc(result, model.Less)
	return result, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (model.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return model.Contact{}, ErrNotFound
	}
	return s.contacts[i], nil
}

func (s *MemoryStore) Create(_ context.Context, c model.Contact) (model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = newID()
	c.CreatedAt = s.now()
	s.contacts = append(s.contacts, c)
	return c, nil
}

func (s *MemoryStore) Update(_ context.Context, id string, u model.ContactUpdate) (model.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return model.Contact{}, ErrNotFound
	}
	s.contacts[i].Apply(u)
	return s.contacts[i], nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.contacts = slices.Delete(s.contacts, i, i+1)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

// indexOf returns the position of the contact with the given id, or -1. The caller holds the lock.
func (s *MemoryStore) indexOf(id string) int {
	return slices.IndexFunc(s.contacts, func(c model.Contact) bool {
		return c.ID == id
	})
}
