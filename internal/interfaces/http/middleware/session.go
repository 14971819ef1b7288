// internal/interfaces/http/middleware/session.go
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/auramart-backend/internal/config"
)

// sessionContextKey is the gin context key carrying the session ID
const sessionContextKey = "session_id"

// Session ensures every request carries an anonymous session cookie.
// All store state (cart, wishlist, recently viewed, rewards) is keyed by
// this ID. There is no authentication; the cookie is the whole identity.
func Session(cfg *config.Config) gin.HandlerFunc {
	maxAge := int(cfg.Session.TTL.Seconds())

	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetCookie(cfg.Session.CookieName, sessionID, maxAge, "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)

		c.Next()
	}
}

// GetSessionID returns the session ID attached by the Session middleware
func GetSessionID(c *gin.Context) string {
	if id, exists := c.Get(sessionContextKey); exists {
		if sessionID, ok := id.(string); ok {
			return sessionID
		}
	}
	return ""
}
