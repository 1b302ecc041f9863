package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/millbooks/backend/internal/platform/token"
)

// UsernameKey is the context key the middleware stores the caller under.
const UsernameKey = "x-username"

// RequireAuth verifies the Bearer token on every request and aborts with 401
// when it is missing or invalid.
func RequireAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token required."})
			return
		}
		claims, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token."})
			return
		}
		c.Set(UsernameKey, claims.Username)
		c.Next()
	}
}
