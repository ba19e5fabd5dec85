package service

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gitlab.com/dirk.krummacker/contacts-app/internal/store"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// server carries the dependencies shared by all handlers.
type server struct {
	contacts store.Store
	logger   *zap.Logger
}

// SetupHttpRouter initializes the router, loads the page templates and registers all endpoints.
// If requestLogging is false then no entry is logged per HTTP request.
func SetupHttpRouter(contacts store.Store, logger *zap.Logger, requestLogging bool) *gin.Engine {
	s := &server{contacts: contacts, logger: logger}

	router := gin.New()
	if requestLogging {
		router.Use(requestLogger(logger))
	} else {
		logger.Info("Turning off HTTP request logging.")
	}
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic while handling request", zap.Any("recovered", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	router.StaticFS("/static", http.FS(static))

	// Pages and the form actions posted from them.
	router.GET("/", s.index)
	router.POST("/contacts", s.createContact)
	router.GET("/contacts/:id", s.showContact)
	router.POST("/contacts/:id", s.favoriteContact)
	router.GET("/contacts/:id/edit", s.editContact)
	router.POST("/contacts/:id/edit", s.updateContact)
	router.POST("/contacts/:id/destroy", s.destroyContact)

	// JSON API.
	api := router.Group("/api")
	api.GET("/contacts", s.findContacts)
	api.POST("/contacts", s.createContactJSON)
	api.GET("/contacts/:id", s.findContactByID)
	api.PUT("/contacts/:id", s.updateContactByID)
	api.DELETE("/contacts/:id", s.deleteContactByID)
	return router
}

// requestLogger logs every HTTP request after it has been handled.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("duration", time.Since(start)),
			zap.String("clientIP", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		logger.Info("HTTP Request", fields...)
	}
}
