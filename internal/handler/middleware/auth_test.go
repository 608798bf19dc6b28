//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"bulk-cleanup/internal/domain/operator"
	"bulk-cleanup/internal/handler/middleware"
	"bulk-cleanup/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	roles map[string]operator.Role
}

func (v stubValidator) Identify(token string) (operator.Identity, error) {
	role, ok := v.roles[token]
	if !ok {
		return operator.Identity{}, errors.New("token is expired")
	}
	return operator.Identity{UserID: uuid.New(), Role: role}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(stubValidator{roles: map[string]operator.Role{
		"admin-token":    operator.RoleAdmin,
		"operator-token": operator.RoleOperator,
	}}, discardLogger())

	r := gin.New()
	r.GET("/guarded", m.RequireAuth(), m.RequireCleanupCapability(), func(c *gin.Context) {
		id, _ := middleware.GetIdentity(c)
		c.String(http.StatusOK, id.Role.String())
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	router := newAuthRouter()

	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{name: "admin passes", token: "admin-token", wantCode: http.StatusOK},
		{name: "missing token", token: "", wantCode: http.StatusUnauthorized},
		{name: "invalid token", token: "forged", wantCode: http.StatusUnauthorized},
		{name: "non-admin lacks the capability", token: "operator-token", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodGet, "/guarded", nil, tt.token)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "admin", rec.Body.String())
				return
			}
			httptest.AssertErrorResponse(t, rec, tt.wantCode, "Unauthorized")
		})
	}
}

func TestRequireAuth_AccessTokenCookie(t *testing.T) {
	router := newAuthRouter()

	rec := httptest.Perform(t, router, httptest.Request{
		Method:  http.MethodGet,
		Path:    "/guarded",
		Cookies: []*http.Cookie{{Name: "access_token", Value: "admin-token"}},
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
