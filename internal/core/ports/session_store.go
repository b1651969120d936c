package ports

import "context"

// SessionStore is durable storage for one serialized identity.
//
// Writers are ordered by ticket: Begin hands out a new ticket and Save only
// commits while that ticket is still the newest. Clear retires every ticket
// handed out so far, so a login that started before a logout can never
// write the session back.
type SessionStore interface {
	// Load returns the stored bytes. ok is false when nothing is stored.
	Load(ctx context.Context) (raw []byte, ok bool, err error)
	// Begin claims the session for a new writer.
	Begin(ctx context.Context) (ticket int64, err error)
	// Save writes raw if ticket is still current. committed is false when a
	// later Begin or a Clear superseded it.
	Save(ctx context.Context, ticket int64, raw []byte) (committed bool, err error)
	Clear(ctx context.Context) error
}

// SessionProvider hands out the SessionStore for a browser session id.
type SessionProvider interface {
	For(sessionID string) SessionStore
	// Rotate moves the identity stored under from to the fresh id to and
	// retires from. moved is false when from holds nothing.
	Rotate(ctx context.Context, from, to string) (moved bool, err error)
}
