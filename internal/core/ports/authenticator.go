package ports

import (
	"context"

	"github.com/vetclinic/portal/internal/core/domain"
)

// Authenticator exchanges credentials for an identity.
//
// Implementations return domain.ErrInvalidCredentials (possibly wrapped) when
// the credentials are rejected and domain.ErrAuthUnavailable when the
// authentication endpoint cannot be reached.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (domain.Identity, error)
}
