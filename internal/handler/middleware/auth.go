package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"massfit-bot/internal/domain/user"
	"massfit-bot/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	ctxPrincipalKey = "principal"
	// staffAPIActorID identifies API callers in logs; they are not chat users.
	staffAPIActorID int64 = -1
)

type AuthMiddleware struct {
	staffToken string
}

func NewAuthMiddleware(cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{staffToken: cfg.API.StaffToken}
}

// RequireStaff accepts the configured bearer token and grants the staff role.
// With no token configured every request is rejected.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			return
		}

		if m.staffToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(m.staffToken)) != 1 {
			slog.Warn("staff token rejected", "client_ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid access token"},
			})
			return
		}

		c.Set(ctxPrincipalKey, user.Principal{ID: staffAPIActorID, Role: user.RoleStaff})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetPrincipal(c *gin.Context) (user.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return user.Principal{}, false
	}
	p, ok := v.(user.Principal)
	return p, ok
}
