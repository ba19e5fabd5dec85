package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/dirk.krummacker/contacts-app/internal/model"
)

// newTestMemoryStore returns a store whose clock advances by one second per created contact.
func newTestMemoryStore() *MemoryStore {
	s := NewMemoryStore()
	clock := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func names(contacts []model.Contact) []string {
	result := make([]string, 0, len(contacts))
	for _, c := range contacts {
		result = append(result, c.DisplayName())
	}
	return result
}

// TestMemoryCreateAndGet creates a contact and expects to find it again by its id.
func TestMemoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()

	created, err := s.Create(ctx, model.Contact{First: "Erika", Last: "Mustermann", ID: "ignored"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "ignored", created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

// TestMemoryCreateEmpty expects the "New" action to store a contact without any values.
func TestMemoryCreateEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()

	created, err := CreateEmpty(ctx, s)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.HasName())
	assert.False(t, created.Favorite)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// TestMemoryList expects filtering by name and ordering by last name and creation time.
func TestMemoryList(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()
	for _, c := range []model.Contact{
		{First: "Ryan", Last: "Florence"},
		{First: "Kent C.", Last: "Dodds"},
		{First: "Michael", Last: "Jackson"},
		{First: "Ryan", Last: "Dodds"},
		{},
	} {
		_, err := s.Create(ctx, c)
		require.NoError(t, err)
	}

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "Kent C. Dodds", "Ryan Dodds", "Ryan Florence", "Michael Jackson"}, names(all))

	ryans, err := s.List(ctx, "RYAN")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ryan Dodds", "Ryan Florence"}, names(ryans))

	none, err := s.List(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

// TestMemoryUpdate expects only the submitted values to change.
func TestMemoryUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()
	created, err := s.Create(ctx, model.Contact{First: "Erika", Last: "Mustermann", Notes: "notes"})
	require.NoError(t, err)

	first := "Rudi"
	updated, err := s.Update(ctx, created.ID, model.ContactUpdate{First: &first})
	require.NoError(t, err)
	assert.Equal(t, "Rudi", updated.First)
	assert.Equal(t, "Mustermann", updated.Last)
	assert.Equal(t, "notes", updated.Notes)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	found, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)
}

// TestMemorySetFavorite toggles the favorite flag on and off.
func TestMemorySetFavorite(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()
	created, err := s.Create(ctx, model.Contact{First: "Erika"})
	require.NoError(t, err)

	updated, err := SetFavorite(ctx, s, created.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Favorite)

	updated, err = SetFavorite(ctx, s, created.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Favorite)
	assert.Equal(t, "Erika", updated.First)
}

// TestMemoryDelete expects that a deleted contact is gone and cannot be deleted twice.
func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()
	keep, err := s.Create(ctx, model.Contact{First: "Keep"})
	require.NoError(t, err)
	gone, err := s.Create(ctx, model.Contact{First: "Gone"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, gone.ID))
	assert.ErrorIs(t, s.Delete(ctx, gone.ID), ErrNotFound)

	_, err = s.Get(ctx, gone.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, keep.ID)
	assert.NoError(t, err)
}

// TestMemoryUnknownID expects ErrNotFound for every operation on an unknown id.
func TestMemoryUnknownID(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()

	_, err := s.Get(ctx, "unknown")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Update(ctx, "unknown", model.ContactUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = SetFavorite(ctx, s, "unknown", true)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "unknown"), ErrNotFound)
}

// TestMemoryListReturnsCopies expects that changing a listed contact does not change the store.
func TestMemoryListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := newTestMemoryStore()
	created, err := s.Create(ctx, model.Contact{First: "Erika"})
	require.NoError(t, err)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	all[0].First = "Changed"

	found, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Erika", found.First)
}

// TestMemoryConcurrentAccess runs writers and readers in parallel. Run with -race.
func TestMemoryConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c, err := CreateEmpty(ctx, s)
			assert.NoError(t, err)
			_, err = SetFavorite(ctx, s, c.ID, true)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := s.List(ctx, "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 20)
}
