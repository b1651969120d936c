package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vetclinic/portal/internal/core/domain"
	"github.com/vetclinic/portal/internal/core/ports"
)

// LocalAuthenticator serves logins from the local user store when no remote
// clinic API is configured.
type LocalAuthenticator struct {
	svc ports.AuthService
}

func NewLocalAuthenticator(svc ports.AuthService) *LocalAuthenticator {
	return &LocalAuthenticator{svc: svc}
}

// Authenticate hides whether the account exists: unknown users and wrong
// passwords both come back as ErrInvalidCredentials.
func (a *LocalAuthenticator) Authenticate(ctx context.Context, username, password string) (domain.Identity, error) {
	_, user, err := a.svc.Login(ctx, username, password)
	switch {
	case err == nil:
		return user.Identity(), nil
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
		return domain.Identity{}, domain.ErrInvalidCredentials
	default:
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrAuthUnavailable, err)
	}
}
