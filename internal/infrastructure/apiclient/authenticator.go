// Package apiclient talks to the clinic REST API that owns user accounts.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/vetclinic/portal/internal/core/domain"
)

const (
	loginPath      = "/auth/login"
	defaultTimeout = 10 * time.Second
	maxBody        = 1 << 20
)

// Config describes how to reach the authentication endpoint.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	RetryMax int
}

// Authenticator exchanges credentials with the clinic API.
type Authenticator struct {
	client  *retryablehttp.Client
	baseURL string
}

func NewAuthenticator(cfg Config) *Authenticator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := retryablehttp.NewClient()
	c.Logger = nil
	c.RetryMax = cfg.RetryMax
	c.RetryWaitMin = 100 * time.Millisecond
	c.RetryWaitMax = time.Second
	c.HTTPClient.Timeout = timeout
	// Hand non-OK responses back to us instead of turning them into errors.
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Authenticator{
		client:  c,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse accepts both a bare identity and one wrapped in "user".
type loginResponse struct {
	domain.Identity
	User *domain.Identity `json:"user,omitempty"`
}

// Authenticate posts the credentials and decodes the identity payload.
// Non-2xx responses are ErrInvalidCredentials; transport failures are
// ErrAuthUnavailable.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (domain.Identity, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("encode login: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return domain.Identity{}, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrAuthUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return domain.Identity{}, fmt.Errorf("%w: status %d", domain.ErrInvalidCredentials, resp.StatusCode)
	}

	var payload loginResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&payload); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: decode identity: %v", domain.ErrInvalidCredentials, err)
	}

	id := payload.Identity
	if payload.User != nil {
		id = *payload.User
	}
	if err := id.Validate(); err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrInvalidCredentials, err)
	}
	return id, nil
}
