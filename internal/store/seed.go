package store

import (
	"context"
	_ "embed"
	"fmt"

	"gitlab.com/dirk.krummacker/contacts-app/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// SeedContacts returns the initial contacts shipped with the binary.
func SeedContacts() ([]model.Contact, error) {
	var contacts []model.Contact
	if err := yaml.Unmarshal(seedYAML, &contacts); err != nil {
		return nil, fmt.Errorf("parse seed contacts: %w", err)
	}
	return contacts, nil
}

// Seed enters the initial contacts into the store. A contact whose first and last name are already
// present is not added again. It returns the number of contacts added.
func Seed(ctx context.Context, s Store) (int, error) {
	contacts, err := SeedContacts()
	if err != nil {
		return 0, err
	}
	added := 0
	for _, contact := range contacts {
		inStore, err := s.List(ctx, contact.DisplayName())
		if err != nil {
			return added, err
		}
		if containsName(inStore, contact) {
			continue
		}
		if _, err := s.Create(ctx, contact); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// containsName returns true if a contact with the same first and last name is in the slice.
func containsName(contacts []model.Contact, contact model.Contact) bool {
	for _, c := range contacts {
		if c.First == contact.First && c.Last == contact.Last {
			return true
		}
	}
	return false
}
