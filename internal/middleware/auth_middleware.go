package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/florandefossez/capsules/internal/session"
)

const sessionKey = "session"

// RequireLogin guards admin routes: anonymous requests are redirected to
// the login page, authenticated ones get their session stashed in the gin
// context for the handler.
func RequireLogin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessions.Current(c.Request)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFrom returns the session stashed by RequireLogin.
func SessionFrom(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
