package service

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/contacts-app/internal/model"
	"gitlab.com/dirk.krummacker/contacts-app/internal/store"
	"go.uber.org/zap"
)

// page is the data handed to the page templates. Every page shows the sidebar with the contacts
// matching the search query Q.
type page struct {
	Title    string
	Q        string
	Contacts []model.Contact
	ActiveID string
	Contact  *model.Contact
}

// loadPage runs the sidebar loader: it reads the 'q' URL parameter and lists the matching
// contacts.
func (s *server) loadPage(c *gin.Context) (page, error) {
	q := c.Query("q")
	contacts, err := s.contacts.List(c.Request.Context(), q)
	if err != nil {
		return page{}, err
	}
	return page{Q: q, Contacts: contacts}, nil
}

// render loads the sidebar, adds the contact (if any) and renders the named template.
func (s *server) render(c *gin.Context, status int, name string, contact *model.Contact) {
	p, err := s.loadPage(c)
	if err != nil {
		s.internalError(c, err)
		return
	}
	if contact != nil {
		p.Contact = contact
		p.ActiveID = contact.ID
		p.Title = contact.DisplayName()
	}
	c.HTML(status, name, p)
}

// fail answers with the Not Found page for unknown contacts and with an internal server error
// otherwise.
func (s *server) fail(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		s.render(c, http.StatusNotFound, "notfound.html", nil)
		return
	}
	s.internalError(c, err)
}

// internalError logs the error and aborts the request.
func (s *server) internalError(c *gin.Context, err error) {
	s.logger.Error("request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
	_ = c.Error(err)
	c.AbortWithStatus(http.StatusInternalServerError)
}

// index shows the contact list and an empty detail pane.
//
// Example: > curl "http://localhost:8080/?q=ryan"
func (s *server) index(c *gin.Context) {
	s.render(c, http.StatusOK, "index.html", nil)
}

// createContact is the action of the "New" button. It creates a contact without any values and
// redirects to its edit page.
func (s *server) createContact(c *gin.Context) {
	contact, err := store.CreateEmpty(c.Request.Context(), s.contacts)
	if err != nil {
		s.internalError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/contacts/"+contact.ID+"/edit")
}

// showContact shows the contact whose id matches the id parameter of the request URL.
func (s *server) showContact(c *gin.Context) {
	contact, err := s.contacts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.render(c, http.StatusOK, "contact.html", &contact)
}

// favoriteContact is the action of the star button. The contact becomes a favorite if the form
// value 'favorite' is "true", and stops being one for any other value.
func (s *server) favoriteContact(c *gin.Context) {
	id := c.Param("id")
	_, err := store.SetFavorite(c.Request.Context(), s.contacts, id, c.PostForm("favorite") == "true")
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/contacts/"+id)
}

// editContact shows the form for changing a contact.
func (s *server) editContact(c *gin.Context) {
	contact, err := s.contacts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	s.render(c, http.StatusOK, "edit.html", &contact)
}

// updateContact is the action of the edit form. Every submitted field is written to the contact,
// fields missing from the form keep their value. It redirects to the contact page.
func (s *server) updateContact(c *gin.Context) {
	id := c.Param("id")
	var update model.ContactUpdate
	if err := c.ShouldBind(&update); err != nil {
		c.String(http.StatusBadRequest, "invalid form data")
		return
	}
	if _, err := s.contacts.Update(c.Request.Context(), id, update); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/contacts/"+id)
}

// destroyContact is the action of the delete button. It redirects to the index page.
func (s *server) destroyContact(c *gin.Context) {
	if err := s.contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
