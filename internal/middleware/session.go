package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/pkg"
	"github.com/simp-lee/loanadmin/internal/session"
)

// SessionIDKey is the gin context key holding the current session ID.
const SessionIDKey = "session_id"

// LoadSession resolves the session cookie into a session record and binds it
// to the request context. Requests without a valid session pass through
// unauthenticated; gating is RequireSession's job.
func LoadSession(m *session.Manager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			c.Next()
			return
		}

		sess, err := m.Lookup(c.Request.Context(), id)
		if err != nil {
			// Stale cookie. Clear it so the browser stops sending it.
			if domain.IsUnauthorized(err) {
				c.SetCookie(cookieName, "", -1, "/", "", false, true)
			}
			c.Next()
			return
		}

		c.Set(SessionIDKey, sess.ID)
		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))
		c.Next()
	}
}

// RequireSession gates authenticated routes. Page requests are redirected to
// the login screen; API requests get a JSON unauthorized response.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.FromContext(c.Request.Context()); ok {
			c.Next()
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			pkg.Error(c, domain.ErrUnauthorized)
		} else {
			c.Redirect(http.StatusFound, "/login")
		}
		c.Abort()
	}
}
