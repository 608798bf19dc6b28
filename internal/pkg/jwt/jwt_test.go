//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"bulk-cleanup/internal/domain/operator"
	"bulk-cleanup/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService(jwt.Options{Secret: "secret", TTL: time.Hour, Issuer: "shop"})
	admin := operator.Identity{UserID: uuid.New(), Role: operator.RoleAdmin}

	t.Run("verify returns the issued identity", func(t *testing.T) {
		token, err := svc.Issue(admin, time.Now())
		require.NoError(t, err)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, admin.UserID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, admin.UserID.String(), claims.Subject)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.Issue(admin, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("leeway tolerates small clock skew", func(t *testing.T) {
		lenient := jwt.NewService(jwt.Options{Secret: "secret", TTL: time.Hour, Issuer: "shop", Leeway: time.Minute})
		token, err := lenient.Issue(admin, time.Now().Add(-time.Hour-10*time.Second))
		require.NoError(t, err)

		_, err = lenient.Verify(token)
		assert.NoError(t, err)
	})

	t.Run("foreign signature", func(t *testing.T) {
		other := jwt.NewService(jwt.Options{Secret: "other-secret", TTL: time.Hour, Issuer: "shop"})
		token, err := other.Issue(admin, time.Now())
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := jwt.NewService(jwt.Options{Secret: "secret", TTL: time.Hour, Issuer: "blog"})
		token, err := other.Issue(admin, time.Now())
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
