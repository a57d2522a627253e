// File: barberbook/middleware/session.go
package middleware

import (
	"barberbook/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie identifies one browser's client session; all cached state
// (auth session, cart, booking draft) is keyed by its value.
const SessionCookie = "bb_sid"

// sessionMaxAge keeps the cookie alive across visits.
const sessionMaxAge = 30 * 24 * 60 * 60

// ClientSessionMiddleware ensures every request carries a client session id
// and exposes it on the gin context as "clientID".
func ClientSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetCookie(SessionCookie, id, sessionMaxAge, "/", "", config.IsProduction(), true)
		}
		c.Set("clientID", id)
		c.Next()
	}
}

// ClientID returns the client session id set by ClientSessionMiddleware.
func ClientID(c *gin.Context) string {
	if v, ok := c.Get("clientID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
