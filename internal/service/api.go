package service

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/contacts-app/internal/model"
	"gitlab.com/dirk.krummacker/contacts-app/internal/store"
	"go.uber.org/zap"
)

// failJSON responds with NOT FOUND for unknown contacts and with INTERNAL SERVER ERROR otherwise.
func (s *server) failJSON(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "contact not found"})
		return
	}
	s.logger.Error("request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}

// findContacts responds with a list of contacts as JSON, ordered by last name.
//
// The URL parameter 'q' is searched for in the full name of the contacts, ignoring case. Without
// it, all contacts are returned. An empty result is an empty list, not an error.
//
// REST API calls:
//
//	> curl "http://localhost:8080/api/contacts"
//	> curl "http://localhost:8080/api/contacts?q=flor"
func (s *server) findContacts(c *gin.Context) {
	contacts, err := s.contacts.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		s.failJSON(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contacts)
}

// createContactJSON creates the contact specified in the request's JSON. It responds with the full
// contact data including the newly assigned id. Fields that are not specified are empty.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/contacts --request "POST" --include --header "Content-Type: application/json" --data '{"first": "Hans", "last": "Wurst", "twitter": "@hanswurst"}'
func (s *server) createContactJSON(c *gin.Context) {
	var submitted model.ContactUpdate
	if err := c.ShouldBindJSON(&submitted); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	var newContact model.Contact
	newContact.Apply(submitted)
	created, err := s.contacts.Create(c.Request.Context(), newContact)
	if err != nil {
		s.failJSON(c, err)
		return
	}
	c.IndentedJSON(http.StatusCreated, created)
}

// findContactByID locates the contact whose ID value matches the id parameter of the request URL,
// then returns that contact as a response.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/contacts/0b6f3c4e-8a3d-4d5e-9d43-2f0a3c1f7e11
func (s *server) findContactByID(c *gin.Context) {
	contact, err := s.contacts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.failJSON(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// updateContactByID updates the contact whose ID value matches the id parameter of the request
// URL, updates the values specified in the JSON (and only those), and finally responds with the
// new version of the contact.
//
// Example REST API calls:
//
//	> curl http://localhost:8080/api/contacts/0b6f3c4e-8a3d-4d5e-9d43-2f0a3c1f7e11 --request "PUT" --include --header "Content-Type: application/json" --data '{"notes": "met at the conference"}'
//	> curl http://localhost:8080/api/contacts/0b6f3c4e-8a3d-4d5e-9d43-2f0a3c1f7e11 --request "PUT" --include --header "Content-Type: application/json" --data '{"favorite": true}'
func (s *server) updateContactByID(c *gin.Context) {
	var submitted model.ContactUpdate
	if err := c.ShouldBindJSON(&submitted); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}

	// It only makes sense to continue if we have at least one value to update.
	if submitted.IsEmpty() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "no values to be updated"})
		return
	}

	contact, err := s.contacts.Update(c.Request.Context(), c.Param("id"), submitted)
	if err != nil {
		s.failJSON(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, contact)
}

// deleteContactByID deletes the contact whose ID value matches the id parameter of the request URL.
//
// Example REST API call:
//
//	> curl http://localhost:8080/api/contacts/0b6f3c4e-8a3d-4d5e-9d43-2f0a3c1f7e11 --request "DELETE"
func (s *server) deleteContactByID(c *gin.Context) {
	if err := s.contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.failJSON(c, err)
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"message": "contact deleted"})
}
