package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/formworks/survey-server/src/services"
	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware for downstream handlers
const (
	ContextAdminID  = "admin_id"
	ContextUsername = "username"
)

// AuthMiddleware gates privileged routes behind a valid session token. The
// token is read from the `token` cookie first, falling back to a bearer
// Authorization header. The gate runs before any store access: a request
// without a valid token never reaches a repository.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		if cookie, err := c.Cookie("token"); err == nil {
			token = cookie
		}

		// Fall back to Authorization header
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" {
				parts := strings.Split(authHeader, " ")
				if len(parts) == 2 && parts[0] == "Bearer" {
					token = parts[1]
				}
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token",
			})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, services.ErrTokenExpired) {
				message = "Token expired. Please login again"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": message,
			})
			c.Abort()
			return
		}

		c.Set(ContextAdminID, claims.Subject)
		c.Set(ContextUsername, claims.Username)
		c.Next()
	}
}
