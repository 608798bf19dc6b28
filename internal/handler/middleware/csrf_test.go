//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"bulk-cleanup/internal/handler/middleware"
	"bulk-cleanup/internal/pkg/config"
	"bulk-cleanup/internal/pkg/cookie"
	"bulk-cleanup/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCSRFRouter(t *testing.T) (*gin.Engine, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	calls := 0
	r := gin.New()
	r.Use(middleware.NewCSRFMiddleware(config.NewTestConfig().CSRF, discardLogger()))
	r.GET("/token", func(c *gin.Context) {
		c.String(http.StatusOK, csrf.Token(c.Request))
	})
	r.POST("/mutate", func(c *gin.Context) {
		calls++
		c.Status(http.StatusNoContent)
	})
	return r, &calls
}

func TestCSRF(t *testing.T) {
	t.Run("rejects an unsafe request without a token", func(t *testing.T) {
		router, calls := newCSRFRouter(t)

		rec := httptest.PerformRequest(t, router, http.MethodPost, "/mutate", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Security check failed")
		assert.Zero(t, *calls)
	})

	t.Run("rejects a token without its cookie", func(t *testing.T) {
		router, calls := newCSRFRouter(t)
		tokenRec := httptest.PerformRequest(t, router, http.MethodGet, "/token", nil, "")
		require.Equal(t, http.StatusOK, tokenRec.Code)

		rec := httptest.Perform(t, router, httptest.Request{
			Method:  http.MethodPost,
			Path:    "/mutate",
			Headers: map[string]string{middleware.CSRFHeader: tokenRec.Body.String()},
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Zero(t, *calls)
	})

	t.Run("accepts the issued token pair", func(t *testing.T) {
		router, calls := newCSRFRouter(t)
		tokenRec := httptest.PerformRequest(t, router, http.MethodGet, "/token", nil, "")
		require.Equal(t, http.StatusOK, tokenRec.Code)
		csrfCookie := httptest.ExtractCookie(tokenRec, cookie.CSRFCookieName)
		require.NotNil(t, csrfCookie)

		rec := httptest.Perform(t, router, httptest.Request{
			Method:  http.MethodPost,
			Path:    "/mutate",
			Headers: map[string]string{middleware.CSRFHeader: tokenRec.Body.String()},
			Cookies: []*http.Cookie{csrfCookie},
		})

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 1, *calls)
	})
}
