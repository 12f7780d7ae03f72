package users

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/devfolio/devfolio/backend/go-services/internal/models"
)

// Service encapsulates admin-account business logic
type Service struct {
	repo UserRepository
}

func NewService(r UserRepository) *Service {
	return &Service{repo: r}
}

// Authenticate checks a username/password pair against the stored bcrypt
// hash. Returns (nil, nil) for unknown usernames and wrong passwords alike so
// the handler cannot leak which half was wrong.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}
	return u, nil
}

// SetCredential creates or updates an admin account with a freshly hashed password.
func (s *Service) SetCredential(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.UpsertByUsername(ctx, &models.User{Username: username, PasswordHash: string(hash)})
}
