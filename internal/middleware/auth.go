package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session and cookie names shared with the auth handler.
const (
	AdminSessionKey = "admin"
	CSRFCookieName  = "csrf_token"
	CSRFHeaderName  = "X-CSRF-Token"
)

// AuthRequired rejects requests without an authenticated admin session.
// Responses never reveal whether the target resource exists.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if admin, ok := session.Get(AdminSessionKey).(bool); !ok || !admin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// CSRFRequired enforces the double-submit check on state-changing requests:
// the X-CSRF-Token header must match the csrf_token cookie set at login.
// Failure is a 403, distinct from the 401 of a missing session.
func CSRFRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		header := c.GetHeader(CSRFHeaderName)
		cookie, err := c.Cookie(CSRFCookieName)
		if err != nil || header == "" ||
			subtle.ConstantTimeCompare([]byte(header), []byte(cookie)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid csrf token"})
			return
		}
		c.Next()
	}
}
