package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"bulk-cleanup/internal/domain/operator"
	"bulk-cleanup/internal/handler/httperr"
	"bulk-cleanup/internal/pkg/cookie"
	"bulk-cleanup/internal/usecase"

	"github.com/gin-gonic/gin"
)

const msgUnauthorized = "Unauthorized"

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	logger         *slog.Logger
}

const ctxIdentityKey = "operator_identity"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		logger:         logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerOrCookie(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		id, err := m.tokenValidator.Identify(token)
		if err != nil {
			m.logger.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		c.Set(ctxIdentityKey, id)
		c.Next()
	}
}

// RequireCleanupCapability must run after RequireAuth.
func (m *AuthMiddleware) RequireCleanupCapability() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok || !id.Role.CanManageCleanup() {
			m.logger.Warn("Cleanup access denied", "user_id", id.UserID.String(), "role", id.Role.String())
			httperr.Abort(c, http.StatusUnauthorized, msgUnauthorized)
			return
		}
		c.Next()
	}
}

func bearerOrCookie(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetIdentity(c *gin.Context) (operator.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return operator.Identity{}, false
	}
	id, ok := v.(operator.Identity)
	return id, ok
}
