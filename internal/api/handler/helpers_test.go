package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vetclinic/portal/internal/api/middleware"
	"github.com/vetclinic/portal/internal/core/domain"
	"github.com/vetclinic/portal/internal/core/ports"
)

type memProvider struct {
	mu      sync.Mutex
	data    map[string][]byte
	tickets map[string]int64
}

func newMemProvider() *memProvider {
	return &memProvider{data: map[string][]byte{}, tickets: map[string]int64{}}
}

func (p *memProvider) For(sid string) ports.SessionStore {
	return memSession{p: p, sid: sid}
}

func (p *memProvider) Rotate(_ context.Context, from, to string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	raw, ok := p.data[from]
	if !ok {
		return false, nil
	}
	p.data[to] = raw
	delete(p.data, from)
	p.tickets[from]++
	return true, nil
}

func (p *memProvider) get(sid string) ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	raw, ok := p.data[sid]
	return raw, ok
}

type memSession struct {
	p   *memProvider
	sid string
}

func (s memSession) Load(context.Context) ([]byte, bool, error) {
	raw, ok := s.p.get(s.sid)
	return raw, ok, nil
}

func (s memSession) Begin(context.Context) (int64, error) {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	s.p.tickets[s.sid]++
	return s.p.tickets[s.sid], nil
}

func (s memSession) Save(_ context.Context, ticket int64, raw []byte) (bool, error) {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	if s.p.tickets[s.sid] != ticket {
		return false, nil
	}
	s.p.data[s.sid] = raw
	return true, nil
}

func (s memSession) Clear(context.Context) error {
	s.p.mu.Lock()
	defer s.p.mu.Unlock()
	delete(s.p.data, s.sid)
	s.p.tickets[s.sid]++
	return nil
}

// stubAuthenticator accepts one username/password pair.
type stubAuthenticator struct {
	username, password string
	identity           domain.Identity
	err                error
}

func (s stubAuthenticator) Authenticate(_ context.Context, username, password string) (domain.Identity, error) {
	if s.err != nil {
		return domain.Identity{}, s.err
	}
	if username != s.username || password != s.password {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}
	return s.identity, nil
}

const testSID = "7d444840-9dc0-11d1-b245-5ffdce74fad2"

// newSessionEcho returns an Echo instance with the validator and the session
// middleware installed, as the router does.
func newSessionEcho(p ports.SessionProvider, auth ports.Authenticator) *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.Use(middleware.Session(middleware.SessionConfig{
		Provider:      p,
		Authenticator: auth,
		Logger:        zerolog.Nop(),
		TTL:           time.Hour,
	}))
	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	return doRequestAs(t, e, method, target, body, testSID)
}

// doRequestAs sends the request with sid as the browser's session cookie.
func doRequestAs(t *testing.T, e *echo.Echo, method, target, body, sid string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: sid})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func seedSession(t *testing.T, p *memProvider, id domain.Identity) {
	t.Helper()
	raw, err := domain.EncodeSession(id)
	if err != nil {
		t.Fatalf("encode session: %v", err)
	}
	p.data[testSID] = raw
}

// issuedSession returns the session id the response leaves in the browser.
func issuedSession(rec *httptest.ResponseRecorder) *http.Cookie {
	var last *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			last = ck
		}
	}
	return last
}
