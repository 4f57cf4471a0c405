package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// DefaultIdentity is the single-tenant identity used when no header is sent.
const DefaultIdentity = "local"

// Identity resolves the caller identity from the X-User-Id header. There is
// no login flow; the header exists so tests and future multi-profile setups
// can partition data without an auth stack.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}
		identity := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if identity == "" {
			identity = DefaultIdentity
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFromContext fetches the identity set by the middleware.
func IdentityFromContext(c *gin.Context) string {
	if c == nil {
		return DefaultIdentity
	}
	val, _ := c.Get(identityKey)
	if id, ok := val.(string); ok && id != "" {
		return id
	}
	return DefaultIdentity
}
