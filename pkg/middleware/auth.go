package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio/backend/go-services/internal/config"
	"github.com/devfolio/devfolio/backend/go-services/internal/tokens"
)

// ClaimsKey is the gin context key under which verified session claims are stored.
const ClaimsKey = "claims"

// SessionAuth reads the admin session cookie and, when it verifies, stores
// the claims in the request context. It never aborts: public GET routes run
// through it too and simply see no claims.
func SessionAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cfg.Auth.CookieName)
		if err == nil && raw != "" {
			if claims, err := tokens.ParseSessionToken(cfg, raw); err == nil {
				c.Set(ClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// RequireSession aborts with 401 unless SessionAuth stored verified claims.
// Applied to every mutating content route and the authenticated read routes.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionFromContext(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the verified session claims, if any.
func SessionFromContext(c *gin.Context) (*tokens.SessionClaims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*tokens.SessionClaims)
	return claims, ok
}
