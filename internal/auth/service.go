package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/amaradesign/portfolio-backend/internal/portfolio"
	"github.com/amaradesign/portfolio-backend/internal/portfolio/domain"
)

// Service verifies admin credentials and owns the session lifecycle.
type Service struct {
	store    portfolio.Storage
	sessions SessionStore
}

func NewService(store portfolio.Storage, sessions SessionStore) *Service {
	return &Service{store: store, sessions: sessions}
}

// Login checks the username/password pair and opens a session on success.
// An unknown username and a wrong password both come back as
// ErrInvalidCredentials; callers must not be able to tell which it was.
func (s *Service) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	admin, err := s.store.GetAdminByUsername(ctx, username)
	if errors.Is(err, domain.ErrAdminNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, admin.ID)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// Admin resolves a session token to its admin record. The lookup is by id;
// usernames play no part in session resolution.
func (s *Service) Admin(ctx context.Context, token string) (*domain.Admin, error) {
	adminID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	admin, err := s.store.GetAdmin(ctx, adminID)
	if errors.Is(err, domain.ErrAdminNotFound) {
		// Session outlived the admin record; treat it as dead.
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return admin, nil
}

// Logout invalidates the session. Calling it for a token that is already
// gone still succeeds.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Invalidate(ctx, token)
}
