package identity

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextUser is the gin context key under which the authenticated
// user id is stored.
const ContextUser = "hisab-user-id"

// UserID returns the authenticated user id for the request.
// It is empty for requests that did not pass the middleware.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUser)
}

// Middleware authenticates requests with the passed resolver and stores
// the resolved user id in the request context. Requests without a valid
// bearer token are rejected with 401.
func Middleware(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrNoCredentials.Error()})
			return
		}

		userID, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidCredentials.Error()})
			return
		}

		c.Set(ContextUser, userID)
		c.Next()
	}
}
