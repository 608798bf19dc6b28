package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bulk-cleanup/internal/handler/httperr"
	"bulk-cleanup/internal/pkg/config"
	"bulk-cleanup/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

const (
	CSRFHeader   = "X-CSRF-Token"
	msgCSRFCheck = "Security check failed. Please reload the page and try again."
)

// NewCSRFMiddleware guards every unsafe method with a double-submit token.
// Safe methods pass through and receive a fresh token via csrf.Token.
func NewCSRFMiddleware(cfg config.CSRFConfig, logger *slog.Logger) gin.HandlerFunc {
	protect := csrf.Protect(
		[]byte(cfg.AuthKey),
		csrf.Secure(cfg.Secure),
		csrf.SameSite(cookie.CSRFSameSite(cfg.SameSite)),
		csrf.CookieName(cookie.CSRFCookieName),
		csrf.RequestHeader(CSRFHeader),
		csrf.Path("/"),
		csrf.HttpOnly(true),
		csrf.TrustedOrigins(cfg.TrustedOrigins),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("CSRF validation failed",
				"path", r.URL.Path,
				"reason", csrf.FailureReason(r))
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(httperr.NewResponse(http.StatusForbidden, msgCSRFCheck))
		})),
	)

	return func(c *gin.Context) {
		passed := false
		next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Next()
		})

		r := c.Request
		if !cfg.Secure {
			r = csrf.PlaintextHTTPRequest(r)
		}
		protect(next).ServeHTTP(c.Writer, r)

		if !passed {
			c.Abort()
		}
	}
}
