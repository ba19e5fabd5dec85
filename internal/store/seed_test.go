package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedContacts(t *testing.T) {
	contacts, err := SeedContacts()
	require.NoError(t, err)
	require.NotEmpty(t, contacts)
	for _, c := range contacts {
		assert.True(t, c.HasName())
		assert.Empty(t, c.ID)
	}
}

// TestSeedTwice expects that seeding an already seeded store does not add anything.
func TestSeedTwice(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	contacts, err := SeedContacts()
	require.NoError(t, err)

	added, err := Seed(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, len(contacts), added)

	added, err = Seed(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, len(contacts))
}
