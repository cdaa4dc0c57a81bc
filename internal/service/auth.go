package service

import (
	"context"

	"github.com/deppfellow/ladder-stats/internal/config"
	"github.com/deppfellow/ladder-stats/internal/errs"
	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/deppfellow/ladder-stats/internal/validation"
	"github.com/rs/zerolog"
)

// SessionStore keeps authenticated principals behind opaque tokens.
type SessionStore interface {
	Create(ctx context.Context, principal model.Principal) (token string, err error)
	Get(ctx context.Context, token string) (principal model.Principal, found bool, err error)
	Delete(ctx context.Context, token string) error
}

type AuthService struct {
	users    *UserService
	sessions SessionStore
	admin    config.AdminConfig
}

func NewAuthService(users *UserService, sessions SessionStore, admin config.AdminConfig) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		admin:    admin,
	}
}

// Login checks the credentials and opens a session for the matching user.
func (s *AuthService) Login(ctx context.Context, username, password string) (model.Principal, string, error) {
	user, err := s.users.AuthenticateUser(ctx, username, password)
	if err != nil {
		return model.Principal{}, "", err
	}

	principal := model.NewPrincipal(user)

	token, err := s.sessions.Create(ctx, principal)
	if err != nil {
		return model.Principal{}, "", err
	}

	zerolog.Ctx(ctx).Info().Int("user_id", principal.ID).Msg("session opened")

	return principal, token, nil
}

// Logout closes the session behind token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if !validation.IsValidUUID(token) {
		return nil
	}

	return s.sessions.Delete(ctx, token)
}

// Resolve returns the principal of an open session.
func (s *AuthService) Resolve(ctx context.Context, token string) (model.Principal, error) {
	if !validation.IsValidUUID(token) {
		return model.Principal{}, errs.NewUnauthorizedError("No session found! Please login.", true)
	}

	principal, found, err := s.sessions.Get(ctx, token)
	if err != nil {
		return model.Principal{}, err
	}

	if !found {
		return model.Principal{}, errs.NewUnauthorizedError("No session found! Please login.", true)
	}

	return principal, nil
}

// IsAdmin reports whether principal is the configured administrator. Both
// username and account name must match.
func (s *AuthService) IsAdmin(principal model.Principal) bool {
	return s.admin.Username != "" &&
		principal.Username == s.admin.Username &&
		principal.AccountName == s.admin.AccountName
}

// Authorize resolves token and requires the administrator.
func (s *AuthService) Authorize(ctx context.Context, token string) (model.Principal, error) {
	principal, err := s.Resolve(ctx, token)
	if err != nil {
		return model.Principal{}, err
	}

	if !s.IsAdmin(principal) {
		return model.Principal{}, errs.NewForbiddenError("You do not have permission to perform this action.", true)
	}

	return principal, nil
}
