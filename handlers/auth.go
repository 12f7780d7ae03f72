package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/devfolio/backend/go-services/internal/config"
	"github.com/devfolio/devfolio/backend/go-services/internal/tokens"
	"github.com/devfolio/devfolio/backend/go-services/internal/users"
	"github.com/devfolio/devfolio/backend/go-services/pkg/logger"
	"github.com/devfolio/devfolio/backend/go-services/pkg/middleware"
)

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler holds dependencies
type AuthHandler struct {
	cfg      *config.Config
	usersSvc *users.Service
}

func NewAuthHandler(cfg *config.Config, u *users.Service) *AuthHandler {
	return &AuthHandler{cfg: cfg, usersSvc: u}
}

// Register routes under /api/auth
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
	a.POST("/logout", h.Logout)
	a.GET("/me", middleware.RequireSession(), h.Me)
}

// Login checks the password against the stored bcrypt hash and on success
// sets the signed HttpOnly session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	u, err := h.usersSvc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Errorf("login lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	token, err := tokens.GenerateSessionToken(h.cfg, u, h.cfg.Auth.SessionTTL)
	if err != nil {
		logger.Errorf("session token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.Auth.CookieName, token, int(h.cfg.Auth.SessionTTL.Seconds()), "/", "", h.cfg.Auth.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}

// Logout expires the session cookie. The token itself is stateless, so
// expiring the cookie is all there is to invalidate.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.Auth.CookieName, "", -1, "/", "", h.cfg.Auth.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the verified session claims for the admin panel header.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, _ := middleware.SessionFromContext(c)
	c.JSON(http.StatusOK, gin.H{"id": claims.Subject, "username": claims.Username})
}
