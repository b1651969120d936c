package ports

import (
	"context"

	"github.com/vetclinic/portal/internal/core/domain"
)

// AuthRepository defines the interface for clinic user persistence.
type AuthRepository interface {
	// FindByLogin matches either the username or the email.
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
