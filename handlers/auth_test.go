package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/devfolio/devfolio/backend/go-services/internal/config"
	"github.com/devfolio/devfolio/backend/go-services/internal/models"
	"github.com/devfolio/devfolio/backend/go-services/internal/users"
	"github.com/devfolio/devfolio/backend/go-services/pkg/middleware"
)

// fake repo for testing
type fakeUserRepo struct {
	store map[string]*models.User
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, ok := f.store[username]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserRepo) UpsertByUsername(ctx context.Context, u *models.User) (*models.User, error) {
	if f.store == nil {
		f.store = map[string]*models.User{}
	}
	f.store[u.Username] = u
	return u, nil
}

func authTestConfig() *config.Config {
	return &config.Config{Auth: config.AuthConfig{
		Secret:     "auth-handler-test-secret",
		CookieName: "admin_token",
		SessionTTL: 24 * time.Hour,
	}}
}

func authEngine(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{store: map[string]*models.User{
		"admin": {ID: "id-admin", Username: "admin", PasswordHash: string(hash)},
	}}
	cfg := authTestConfig()
	g := gin.New()
	g.Use(middleware.SessionAuth(cfg))
	NewAuthHandler(cfg, users.NewService(repo)).Register(g.Group("/api"))
	return g, cfg
}

func postJSON(g *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	g, cfg := authEngine(t)

	w := postJSON(g, "/api/auth/login", `{"username":"admin","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	require.Equal(t, cfg.Auth.CookieName, c.Name)
	require.NotEmpty(t, c.Value)
	require.True(t, c.HttpOnly)
	require.Equal(t, int(cfg.Auth.SessionTTL.Seconds()), c.MaxAge)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	g, _ := authEngine(t)

	w := postJSON(g, "/api/auth/login", `{"username":"admin","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid credentials")
	require.Empty(t, w.Result().Cookies())

	w = postJSON(g, "/api/auth/login", `{"username":"nobody","password":"hunter2"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	g, _ := authEngine(t)
	w := postJSON(g, "/api/auth/login", `{"username":"admin"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogoutExpiresCookie(t *testing.T) {
	g, cfg := authEngine(t)

	w := postJSON(g, "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, cfg.Auth.CookieName, cookies[0].Name)
	require.Less(t, cookies[0].MaxAge, 0)
}

func TestMeRequiresSession(t *testing.T) {
	g, cfg := authEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// log in, replay the cookie
	lw := postJSON(g, "/api/auth/login", `{"username":"admin","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, lw.Code)
	cookie := lw.Result().Cookies()[0]

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: cfg.Auth.CookieName, Value: cookie.Value})
	w = httptest.NewRecorder()
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "admin")
}
