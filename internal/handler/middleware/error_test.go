//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"bulk-cleanup/internal/handler/httperr"
	"bulk-cleanup/internal/handler/middleware"
	"bulk-cleanup/internal/pkg/config"
	"bulk-cleanup/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.CustomRecovery(discardLogger()), middleware.ErrorHandler())
	r.POST("/panic", func(c *gin.Context) {
		panic("pending store exploded")
	})
	r.POST("/conflict", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("state gone"), "Scan state lost. Please start a new scan.", nil)
	})
	r.POST("/silent", func(c *gin.Context) {
		_ = c.Error(errors.New("private failure"))
	})

	tests := []struct {
		name    string
		path    string
		status  int
		message string
	}{
		{name: "panic becomes a 500 envelope", path: "/panic", status: http.StatusInternalServerError, message: "Internal server error"},
		{name: "public error keeps its status and message", path: "/conflict", status: http.StatusConflict, message: "Scan state lost"},
		{name: "unwritten private error becomes a 500 envelope", path: "/silent", status: http.StatusInternalServerError, message: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodPost, tt.path, nil, "")
			httptest.AssertErrorResponse(t, rec, tt.status, tt.message)
		})
	}
}

func TestCORSExposesCSRFHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.CORSConfig{
		AllowOrigins:     []string{"http://admin.example.com"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg, discardLogger()))
	r.GET("/api/cleanup/token", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("preflight allows the header", func(t *testing.T) {
		rec := httptest.Perform(t, r, httptest.Request{
			Method: http.MethodOptions,
			Path:   "/api/cleanup/token",
			Headers: map[string]string{
				"Origin":                         "http://admin.example.com",
				"Access-Control-Request-Method":  http.MethodPost,
				"Access-Control-Request-Headers": middleware.CSRFHeader,
			},
		})
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), http.CanonicalHeaderKey(middleware.CSRFHeader))
	})

	t.Run("response exposes the header", func(t *testing.T) {
		rec := httptest.Perform(t, r, httptest.Request{
			Method:  http.MethodGet,
			Path:    "/api/cleanup/token",
			Headers: map[string]string{"Origin": "http://admin.example.com"},
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), http.CanonicalHeaderKey(middleware.CSRFHeader))
	})
}
