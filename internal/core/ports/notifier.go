package ports

import (
	"context"

	"github.com/vetclinic/portal/internal/core/domain"
)

// Notifier surfaces user-visible messages (toasts).
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}
