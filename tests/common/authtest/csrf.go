//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	gohttptest "net/http/httptest"
	"testing"

	"bulk-cleanup/internal/pkg/cookie"
	"bulk-cleanup/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Session is an authenticated operator holding a CSRF token pair.
type Session struct {
	AccessToken string
	CSRFToken   string
	Cookies     []*http.Cookie
}

// NewSession fetches a CSRF token for accessToken from GET /api/cleanup/token.
func NewSession(t *testing.T, router *gin.Engine, accessToken string) Session {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodGet, "/api/cleanup/token", nil, accessToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			Token string `json:"csrfToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)

	csrfCookie := httptest.ExtractCookie(w, cookie.CSRFCookieName)
	require.NotNil(t, csrfCookie, "CSRF cookie not set")

	return Session{
		AccessToken: accessToken,
		CSRFToken:   body.Data.Token,
		Cookies:     []*http.Cookie{csrfCookie},
	}
}

// Do performs an authenticated request carrying the CSRF header and cookie.
func (s Session) Do(t *testing.T, router *gin.Engine, method, path string, body any) *gohttptest.ResponseRecorder {
	t.Helper()
	return httptest.Perform(t, router, httptest.Request{
		Method:    method,
		Path:      path,
		Body:      body,
		AuthToken: s.AccessToken,
		Headers:   map[string]string{"X-CSRF-Token": s.CSRFToken},
		Cookies:   s.Cookies,
	})
}
