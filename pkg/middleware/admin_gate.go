package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminGate redirects unauthenticated requests for /admin/* pages to the
// login page, and sends already-authenticated visitors of /admin/login back
// to the dashboard. Relies on SessionAuth having run first. API routes are
// not touched; they answer 401 JSON instead of redirecting.
func AdminGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !strings.HasPrefix(path, "/admin") {
			c.Next()
			return
		}
		_, authed := SessionFromContext(c)
		isLoginPage := path == "/admin/login"

		if !isLoginPage && !authed {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		if isLoginPage && authed {
			c.Redirect(http.StatusFound, "/admin")
			c.Abort()
			return
		}
		c.Next()
	}
}
