package handlers

import (
	"errors"
	"soclone/internal/middleware"
	"soclone/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path

	// One-shot flash message, survives the redirect after a write
	session := sessions.Default(c)
	if f := session.Get("flash"); f != nil {
		obj["Flash"] = f
		session.Delete("flash")
		session.Save()
	}

	c.HTML(code, name, obj)
}

// Flash stores a one-shot message shown on the next rendered page.
func Flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.Set("flash", message)
	session.Save()
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// validationMessage unwraps a model-layer validation error into the message
// shown next to the form, or returns a generic fallback.
func validationMessage(err error, fallback string) string {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return fallback
}
