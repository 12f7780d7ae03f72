package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/devfolio/devfolio/backend/go-services/internal/config"
	"github.com/devfolio/devfolio/backend/go-services/internal/models"
)

// SessionClaims is what a verified admin session cookie carries.
type SessionClaims struct {
	Subject  string
	Username string
}

// GenerateSessionToken creates a signed JWT for the admin session cookie
func GenerateSessionToken(cfg *config.Config, u *models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      u.ID,
		"username": u.Username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.Auth.Secret))
}

// ParseSessionToken verifies signature and expiry and returns the claims.
// Any failure (bad signature, expired, wrong alg) is an error; callers must
// treat an error as "not authenticated", never inspect the returned claims.
func ParseSessionToken(cfg *config.Config, raw string) (*SessionClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	sub, _ := mc["sub"].(string)
	username, _ := mc["username"].(string)
	if sub == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	return &SessionClaims{Subject: sub, Username: username}, nil
}
