package middleware

import (
	"errors"
	"log"
	"net"
	"net/http"
	"regexp"
	"strings"

	"soclone/internal/models"
	"soclone/internal/services"
	"soclone/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var questionPathRx = regexp.MustCompile(`^/questions/(\d+)$`)

// ClientIP extracts the caller's address: first token of X-Forwarded-For
// when a proxy set it, otherwise the transport remote address. Best effort,
// never fails.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ResolveIdentity returns the logged-in user's id, or nil for anonymous
// visitors, together with the client address.
func ResolveIdentity(c *gin.Context) (*uint, string) {
	var userID *uint
	if u, exists := c.Get(CheckUserKey); exists {
		id := u.(*models.User).ID
		userID = &id
	}
	return userID, ClientIP(c.Request)
}

// QuestionViews records a unique view before a question detail page renders.
// Anonymous visitors are identified by address, logged-in users by account;
// the same identity revisiting never bumps the count. Must be registered
// after LoadUser.
func QuestionViews(views *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		m := questionPathRx.FindStringSubmatch(c.Request.URL.Path)
		if m == nil {
			c.Next()
			return
		}

		questionID := utils.StringToUint(m[1])
		userID, ip := ResolveIdentity(c)

		if err := views.RecordView(questionID, userID, ip); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.HTML(http.StatusNotFound, "error.html", gin.H{"Error": "Question not found"})
			} else {
				log.Printf("Failed to record view for question %d: %v", questionID, err)
				c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": "Something went wrong"})
			}
			c.Abort()
			return
		}
		c.Next()
	}
}
