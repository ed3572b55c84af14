package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"eventplanner-api/internal/core/auth"
	"eventplanner-api/internal/domain"
	resp "eventplanner-api/internal/transport/http/response"
)

const ctxUserKey = "authUser"

// Authenticate extracts the bearer token, verifies it and resolves the
// embedded user from the store. The resolved user (without its password
// hash in any response) lands in the request context.
func Authenticate(j *auth.JWTer, users domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			resp.Err(c, domain.ErrUnauthenticated("Not authorized, no token"))
			return
		}
		uid, err := j.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			resp.Err(c, domain.ErrUnauthenticated("Not authorized, token invalid"))
			return
		}
		u, err := users.FindByID(c.Request.Context(), uid)
		if err != nil {
			resp.Err(c, err)
			return
		}
		if u == nil {
			// token outlived the account
			resp.Err(c, domain.ErrUnauthenticated("Not authorized, token invalid"))
			return
		}
		c.Set(ctxUserKey, u)
		c.Next()
	}
}

// RequireAdmin must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			resp.Err(c, domain.ErrUnauthenticated("Not authorized, no token"))
			return
		}
		if !u.IsAdmin {
			resp.Err(c, domain.ErrForbidden())
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) *domain.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if u, ok := v.(*domain.User); ok {
			return u
		}
	}
	return nil
}
