package model

import (
	"strings"
	"time"
)

// Contact is the data structure for a person that we know.
// All fields with the exception of the ID field are optional. Unset text fields are empty strings.
type Contact struct {
	ID        string    `json:"id"                yaml:"id"        db:"id"`
	First     string    `json:"first,omitempty"   yaml:"first"     db:"firstname"`
	Last      string    `json:"last,omitempty"    yaml:"last"      db:"lastname"`
	Twitter   string    `json:"twitter,omitempty" yaml:"twitter"   db:"twitter"`
	Avatar    string    `json:"avatar,omitempty"  yaml:"avatar"    db:"avatar"`
	Notes     string    `json:"notes,omitempty"   yaml:"notes"     db:"notes"`
	Favorite  bool      `json:"favorite"          yaml:"favorite"  db:"favorite"`
	CreatedAt time.Time `json:"createdAt"         yaml:"-"         db:"created_at"`
}

// ContactUpdate carries the values submitted for a contact. A nil field means that the value was
// not submitted and stays as it is.
type ContactUpdate struct {
	First    *string `json:"first,omitempty"    form:"first"`
	Last     *string `json:"last,omitempty"     form:"last"`
	Twitter  *string `json:"twitter,omitempty"  form:"twitter"`
	Avatar   *string `json:"avatar,omitempty"   form:"avatar"`
	Notes    *string `json:"notes,omitempty"    form:"notes"`
	Favorite *bool   `json:"favorite,omitempty" form:"-"`
}

// IsEmpty returns true if the update does not carry a single value.
func (u ContactUpdate) IsEmpty() bool {
	return u.First == nil && u.Last == nil && u.Twitter == nil &&
		u.Avatar == nil && u.Notes == nil && u.Favorite == nil
}

// Apply overwrites the fields of the contact that are set in the update.
func (c *Contact) Apply(u ContactUpdate) {
	if u.First != nil {
		c.First = *u.First
	}
	if u.Last != nil {
		c.Last = *u.Last
	}
	if u.Twitter != nil {
		c.Twitter = *u.Twitter
	}
	if u.Avatar != nil {
		c.Avatar = *u.Avatar
	}
	if u.Notes != nil {
		c.Notes = *u.Notes
	}
	if u.Favorite != nil {
		c.Favorite = *u.Favorite
	}
}

// HasName returns true if the contact has a first name or a last name.
func (c Contact) HasName() bool {
	return c.First != "" || c.Last != ""
}

// DisplayName returns first and last name separated by a blank.
func (c Contact) DisplayName() string {
	return strings.TrimSpace(c.First + " " + c.Last)
}

// Matches reports whether the contact's full name contains the query, ignoring case. An empty or
// blank query matches every contact.
func (c Contact) Matches(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	name := strings.ToLower(c.First + " " + c.Last)
	return strings.Contains(name, strings.ToLower(query))
}

// Less orders contacts by last name and, for equal last names, by creation time.
func Less(a, b Contact) int {
	if c := strings.Compare(a.Last, b.Last); c != 0 {
		return c
	}
	return a.CreatedAt.Compare(b.CreatedAt)
}
