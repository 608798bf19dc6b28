package cookie

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

const (
	AccessTokenCookieName = "access_token"
	CSRFCookieName        = "cleanup_csrf"
)

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func CSRFSameSite(sameSite string) csrf.SameSiteMode {
	switch sameSite {
	case "Strict":
		return csrf.SameSiteStrictMode
	case "Lax":
		return csrf.SameSiteLaxMode
	case "None":
		return csrf.SameSiteNoneMode
	default:
		return csrf.SameSiteLaxMode
	}
}
