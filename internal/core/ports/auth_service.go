package ports

import (
	"context"

	"github.com/vetclinic/portal/internal/core/domain"
)

// RegisterInput carries the fields of a new clinic account.
type RegisterInput struct {
	Username string
	Password string
	Name     string
	Email    string
	Role     domain.Role
	ImageURL string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, login, password string) (string, *domain.User, error)
}
