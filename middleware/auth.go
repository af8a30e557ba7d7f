package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/diwashkafle/mygadgetnepal/auth"
)

const identityKey = "identity"

// Identity attaches the caller's identity to the context when a valid
// bearer token is present. Anonymous callers pass through untouched, so
// guest checkout keeps working.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}
		ident, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "), secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

// RequireAuth aborts anonymous requests. It must run after Identity.
func RequireAuth(c *gin.Context) {
	if _, ok := IdentityFrom(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		c.Abort()
		return
	}
	c.Next()
}

// IdentityFrom returns the identity set by the Identity middleware, if any.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	ident, ok := v.(auth.Identity)
	return ident, ok
}
