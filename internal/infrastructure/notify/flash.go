// Package notify delivers user-visible notifications.
package notify

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vetclinic/portal/internal/core/domain"
)

// Flash collects the notifications raised while serving one request so the
// handler can return them to the front-end, which shows them as toasts.
type Flash struct {
	log zerolog.Logger

	mu    sync.Mutex
	items []domain.Notification
}

func NewFlash(log zerolog.Logger) *Flash {
	return &Flash{log: log}
}

func (f *Flash) Notify(_ context.Context, n domain.Notification) {
	f.log.Debug().Str("level", string(n.Level)).Str("message", n.Message).Msg("notification")

	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, n)
}

// Drain returns the collected notifications and empties the buffer.
func (f *Flash) Drain() []domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.items
	f.items = nil
	if out == nil {
		out = []domain.Notification{}
	}
	return out
}
