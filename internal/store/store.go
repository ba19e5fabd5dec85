package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gitlab.com/dirk.krummacker/contacts-app/internal/model"
)

// ErrNotFound is returned when no contact exists for a given id.
var ErrNotFound = errors.New("store: contact not found")

// Store keeps the list of contacts. All implementations return contacts ordered by last name and
// creation time, and return ErrNotFound for unknown ids.
type Store interface {
	// List returns all contacts whose full name contains the query, ignoring case. An empty query
	// returns every contact.
	List(ctx context.Context, query string) ([]model.Contact, error)
	Get(ctx context.Context, id string) (model.Contact, error)
	// Create stores a new contact. The id and the creation time are assigned by the store.
	Create(ctx context.Context, c model.Contact) (model.Contact, error)
	Update(ctx context.Context, id string, u model.ContactUpdate) (model.Contact, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// CreateEmpty stores a contact without any values. This is what the "New" button does.
func CreateEmpty(ctx context.Context, s Store) (model.Contact, error) {
	return s.Create(ctx, model.Contact{})
}

// SetFavorite marks or unmarks the contact as favorite.
func SetFavorite(ctx context.Context, s Store, id string, favorite bool) (model.Contact, error) {
	return s.Update(ctx, id, model.ContactUpdate{Favorite: &favorite})
}

// newID returns a fresh opaque contact id.
func newID() string {
	return uuid.NewString()
}
