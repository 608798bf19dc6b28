//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"bulk-cleanup/internal/domain/operator"
	"bulk-cleanup/internal/pkg/config"
	"bulk-cleanup/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the host platform does for the configured secret.
type JWTHelper struct {
	svc *jwt.Service
	ttl time.Duration
}

func NewJWTHelper(t *testing.T, cfg config.JWTConfig) *JWTHelper {
	t.Helper()
	ttl, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)
	return &JWTHelper{
		svc: jwt.NewService(jwt.Options{Secret: cfg.Secret, TTL: ttl, Issuer: cfg.Issuer, Leeway: cfg.Leeway}),
		ttl: ttl,
	}
}

func (h *JWTHelper) GenerateToken(t *testing.T, role operator.Role) string {
	t.Helper()
	token, err := h.svc.Issue(operator.Identity{UserID: uuid.New(), Role: role}, time.Now())
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, role operator.Role) string {
	t.Helper()
	token, err := h.svc.Issue(operator.Identity{UserID: uuid.New(), Role: role}, time.Now().Add(-2*h.ttl-time.Hour))
	require.NoError(t, err)
	return token
}
