package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/service"
	"github.com/thdihan/rangva-server/internal/response"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// Auth verifies the access token from the Authorization header and, when
// roles are given, requires the caller to hold one of them. A missing or
// invalid token is 401; a valid token with the wrong role is 403.
func Auth(authService service.AuthService, logger *slog.Logger, roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			abort(c, http.StatusUnauthorized, "You are not authorized")
			return
		}

		claims, err := authService.VerifyAccessToken(token)
		if err != nil {
			logger.Warn("⚠️ [Auth] Token verification failed", "error", err)
			abort(c, http.StatusUnauthorized, "You are not authorized")
			return
		}

		if len(roles) > 0 && !hasRole(claims.Role, roles) {
			logger.Warn("⚠️ [Auth] Insufficient role", "role", claims.Role, "path", c.Request.URL.Path)
			abort(c, http.StatusForbidden, "Forbidden")
			return
		}

		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, string(claims.Role))
		c.Next()
	}
}

func hasRole(role models.UserRole, allowed []models.UserRole) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, response.Envelope{
		Success: false,
		Message: message,
		Error:   message,
	})
}
