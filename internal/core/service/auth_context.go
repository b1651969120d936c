package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vetclinic/portal/internal/core/authz"
	"github.com/vetclinic/portal/internal/core/domain"
	"github.com/vetclinic/portal/internal/core/ports"
)

// RehydrateResult reports what Rehydrate found in the session store.
type RehydrateResult string

const (
	RehydrateRestored  RehydrateResult = "restored"
	RehydrateAnonymous RehydrateResult = "anonymous"
	RehydrateCorrupt   RehydrateResult = "corrupt"
	RehydrateFailed    RehydrateResult = "failed"
)

const (
	msgInvalidCredentials = "Invalid username or password."
	msgAuthUnavailable    = "Could not reach the clinic server. Check your connection and try again."
)

// AuthContextDeps are the collaborators an AuthContext is built from.
type AuthContextDeps struct {
	Authenticator ports.Authenticator
	Sessions      ports.SessionStore
	Notifier      ports.Notifier
	Logger        zerolog.Logger
}

// AuthContext is the single source of truth for who is logged in and what
// they may do. It starts in the loading state; call Rehydrate once to restore
// the persisted session and Close when the owner goes away.
type AuthContext struct {
	auth     ports.Authenticator
	sessions ports.SessionStore
	notifier ports.Notifier
	log      zerolog.Logger

	mu         sync.RWMutex
	identity   *domain.Identity
	loading    bool
	pending    int
	generation uint64
	closed     bool
}

var _ authz.Viewer = (*AuthContext)(nil)

func NewAuthContext(deps AuthContextDeps) *AuthContext {
	return &AuthContext{
		auth:     deps.Authenticator,
		sessions: deps.Sessions,
		notifier: deps.Notifier,
		log:      deps.Logger,
		loading:  true,
	}
}

// Rehydrate restores the identity from the session store and leaves the
// loading state. Unreadable or corrupt sessions count as anonymous.
func (a *AuthContext) Rehydrate(ctx context.Context) RehydrateResult {
	result, restored := a.readSession(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	// A login that committed while we were reading wins over the stored copy.
	if restored != nil && a.identity == nil && !a.closed {
		a.identity = restored
	}
	a.loading = false
	return result
}

func (a *AuthContext) readSession(ctx context.Context) (RehydrateResult, *domain.Identity) {
	raw, ok, err := a.sessions.Load(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("session load failed, continuing anonymous")
		return RehydrateFailed, nil
	}
	if !ok {
		return RehydrateAnonymous, nil
	}

	id, err := domain.DecodeSession(raw)
	if err != nil {
		a.log.Warn().Err(err).Msg("discarding corrupt session")
		if clearErr := a.sessions.Clear(ctx); clearErr != nil {
			a.log.Warn().Err(clearErr).Msg("failed to clear corrupt session")
		}
		return RehydrateCorrupt, nil
	}
	return RehydrateRestored, &id
}

// Login authenticates and, on success, makes the returned identity current
// and persists it. Only the most recently started login may commit; an older
// one finishing later, or any login finishing after Close, is dropped. The
// same holds across contexts sharing one session: a Login or Logout started
// elsewhere on the session supersedes this one.
func (a *AuthContext) Login(ctx context.Context, username, password string) bool {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return false
	}
	a.generation++
	gen := a.generation
	ticket, err := a.sessions.Begin(ctx)
	if err != nil {
		a.mu.Unlock()
		a.log.Warn().Err(err).Str("username", username).Msg("session unavailable, login aborted")
		a.notify(ctx, domain.NotifyError, msgAuthUnavailable)
		return false
	}
	a.pending++
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.pending--
		a.mu.Unlock()
	}()

	id, err := a.auth.Authenticate(ctx, username, password)
	if err == nil {
		err = id.Validate()
		if err != nil {
			err = errors.Join(domain.ErrInvalidCredentials, err)
		}
	}

	a.mu.Lock()
	if a.closed || gen != a.generation {
		a.mu.Unlock()
		a.log.Debug().Str("username", username).Msg("login result dropped")
		return false
	}
	if err != nil {
		a.mu.Unlock()
		a.log.Info().Err(err).Str("username", username).Msg("login failed")
		a.notify(ctx, domain.NotifyError, failureMessage(err))
		return false
	}
	if !a.persist(ctx, ticket, id) {
		a.mu.Unlock()
		a.log.Info().Str("user_id", id.ID).Msg("login superseded on the session, result dropped")
		return false
	}
	a.identity = &id
	a.mu.Unlock()

	a.log.Info().Str("user_id", id.ID).Str("role", string(id.Role)).Msg("login succeeded")
	a.notify(ctx, domain.NotifySuccess, "Welcome, "+id.Name+".")
	return true
}

// persist writes the session under ticket. Called with a.mu held so the store
// always matches the identity in memory. It reports false only when another
// writer superseded ticket; store errors are logged and the login stands.
func (a *AuthContext) persist(ctx context.Context, ticket int64, id domain.Identity) bool {
	raw, err := domain.EncodeSession(id)
	if err != nil {
		a.log.Warn().Err(err).Str("user_id", id.ID).Msg("session encode failed")
		return true
	}
	committed, err := a.sessions.Save(ctx, ticket, raw)
	if err != nil {
		a.log.Warn().Err(err).Str("user_id", id.ID).Msg("session save failed")
		return true
	}
	return committed
}

// Logout clears the identity from memory and from the session store. It is
// safe to call when nobody is logged in.
func (a *AuthContext) Logout(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Any login still in flight must not resurrect the identity.
	a.generation++
	a.identity = nil
	if err := a.sessions.Clear(ctx); err != nil {
		a.log.Warn().Err(err).Msg("session clear failed")
	}
}

// Close tears the context down. Late login results are ignored afterwards.
func (a *AuthContext) Close() {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
}

// Loading is true until Rehydrate has completed.
func (a *AuthContext) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

// Busy is true while a login on this context is waiting on the
// authentication endpoint. It says nothing about other contexts sharing the
// session.
func (a *AuthContext) Busy() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.pending > 0
}

func (a *AuthContext) Current() (domain.Identity, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.identity == nil {
		return domain.Identity{}, false
	}
	return *a.identity, true
}

// HasPermission reports whether the current role is one of roles.
func (a *AuthContext) HasPermission(roles ...domain.Role) bool {
	return a.Snapshot().HasPermission(roles...)
}

// HasFeatureAccess reports whether the current role may use feature.
func (a *AuthContext) HasFeatureAccess(feature domain.Feature) bool {
	return a.Snapshot().HasFeatureAccess(feature)
}

// Snapshot captures the current state for a consistent multi-step read.
func (a *AuthContext) Snapshot() authz.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s := authz.Snapshot{Rehydrating: a.loading}
	if a.identity != nil {
		id := *a.identity
		s.Identity = &id
	}
	return s
}

func (a *AuthContext) notify(ctx context.Context, level domain.NotificationLevel, msg string) {
	if a.notifier == nil {
		return
	}
	a.notifier.Notify(ctx, domain.Notification{Level: level, Message: msg})
}

func failureMessage(err error) string {
	if errors.Is(err, domain.ErrAuthUnavailable) {
		return msgAuthUnavailable
	}
	return msgInvalidCredentials
}
