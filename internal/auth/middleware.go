// Package auth is the single choke point every data-bearing request
// passes before reaching store queries.
package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yourname/wearmock/internal"
	"github.com/yourname/wearmock/internal/response"
	"github.com/yourname/wearmock/internal/store"
)

// UserKey is the gin context key the resolved user is stored under.
const UserKey = "user"

// Middleware enforces the bearer-token gate: absent credential,
// malformed credential, and invalid-or-expired token each reject
// terminally. Validation runs against the store on every request;
// there is no session caching and no refresh at this layer.
func Middleware(s *store.Store, logger internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.Unauthorized("missing authorization header"))
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.Unauthorized("malformed authorization header"))
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.Unauthorized("malformed authorization header"))
			return
		}

		user, err := s.GetUserByToken(token)
		if err != nil {
			logger.Warnf("rejected token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.Unauthorized("invalid or expired token"))
			return
		}
		c.Set(UserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user the middleware attached to the context.
// Only call it below the middleware.
func CurrentUser(c *gin.Context) *internal.User {
	return c.MustGet(UserKey).(*internal.User)
}
