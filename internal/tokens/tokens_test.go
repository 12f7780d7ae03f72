package tokens

import (
	"testing"
	"time"

	"github.com/devfolio/devfolio/backend/go-services/internal/config"
	"github.com/devfolio/devfolio/backend/go-services/internal/models"
)

func testConfig(secret string) *config.Config {
	return &config.Config{Auth: config.AuthConfig{Secret: secret}}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	cfg := testConfig("roundtrip-secret")
	u := &models.User{ID: "u-123", Username: "admin"}

	raw, err := GenerateSessionToken(cfg, u, time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	claims, err := ParseSessionToken(cfg, raw)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Subject != "u-123" || claims.Username != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := testConfig("expiry-secret")
	raw, err := GenerateSessionToken(cfg, &models.User{ID: "u-1"}, -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseSessionToken(cfg, raw); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	raw, err := GenerateSessionToken(testConfig("secret-a"), &models.User{ID: "u-1"}, time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseSessionToken(testConfig("secret-b"), raw); err == nil {
		t.Fatal("expected token signed with a different secret to be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := ParseSessionToken(testConfig("s"), "not.a.jwt"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}
