package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vetclinic/portal/internal/core/domain"
	"github.com/vetclinic/portal/internal/core/ports"
)

const defaultSessionTTL = 7 * 24 * time.Hour

// saveIfCurrent writes the identity only while the caller's ticket is the
// newest one issued for the session.
//
// KEYS[1] ticket counter, KEYS[2] identity
// ARGV[1] ticket, ARGV[2] identity bytes, ARGV[3] ttl in ms
var saveIfCurrent = redis.NewScript(`
if redis.call('GET', KEYS[1]) ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`)

// rotate copies the identity to a new session id, deletes the old one and
// retires the old id's tickets.
//
// KEYS[1] old identity, KEYS[2] old ticket counter, KEYS[3] new identity
// ARGV[1] ttl in ms
var rotate = redis.NewScript(`
local raw = redis.call('GET', KEYS[1])
if not raw then
	return 0
end
redis.call('SET', KEYS[3], raw, 'PX', ARGV[1])
redis.call('DEL', KEYS[1])
redis.call('INCR', KEYS[2])
redis.call('PEXPIRE', KEYS[2], ARGV[1])
return 1
`)

// SessionStore keeps one serialized identity per browser session.
// Key format: session:<session_id>:<domain.SessionKey>, with the ticket
// counter next to it under session:<session_id>:ticket.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.SessionProvider = (*SessionStore)(nil)

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// Entries expire ttl after their last write.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// For returns the store scoped to one browser session.
func (s *SessionStore) For(sessionID string) ports.SessionStore {
	return &scopedSession{
		client: s.client,
		ttl:    s.ttl,
		key:    key(sessionID),
		ticket: ticketKey(sessionID),
	}
}

// Rotate moves the identity under from to the id to.
func (s *SessionStore) Rotate(ctx context.Context, from, to string) (bool, error) {
	n, err := rotate.Run(ctx, s.client,
		[]string{key(from), ticketKey(from), key(to)},
		s.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("session rotate: %w", err)
	}
	return n == 1, nil
}

func key(sessionID string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, domain.SessionKey)
}

func ticketKey(sessionID string) string {
	return fmt.Sprintf("session:%s:ticket", sessionID)
}

type scopedSession struct {
	client *redis.Client
	ttl    time.Duration
	key    string
	ticket string
}

func (s *scopedSession) Load(ctx context.Context) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("session load: %w", err)
	}
	return raw, true, nil
}

func (s *scopedSession) Begin(ctx context.Context) (int64, error) {
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, s.ticket)
		pipe.PExpire(ctx, s.ticket, s.ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("session begin: %w", err)
	}
	return incr.Val(), nil
}

func (s *scopedSession) Save(ctx context.Context, ticket int64, raw []byte) (bool, error) {
	n, err := saveIfCurrent.Run(ctx, s.client,
		[]string{s.ticket, s.key},
		ticket, raw, s.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("session save: %w", err)
	}
	return n == 1, nil
}

func (s *scopedSession) Clear(ctx context.Context) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, s.ticket)
		pipe.PExpire(ctx, s.ticket, s.ttl)
		pipe.Del(ctx, s.key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
