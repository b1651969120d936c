package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/portal/internal/core/domain"
	"github.com/vetclinic/portal/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, login, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, login, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, login, password)
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Username != "alice" || in.Role != domain.RoleReceptionist || in.Name != "Alice" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u-1", Username: in.Username, Name: in.Name, Role: in.Role}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := postJSON(e, "/auth/register",
		`{"username":"alice","password":"secret123","name":"Alice","email":"a@example.com","role":"Recepcionista"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("missing user in response")
	}
	if user["role"] != "Recepcionista" {
		t.Fatalf("unexpected role: %v", user["role"])
	}
	if _, leaked := user["PasswordHash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}
}

func TestAuthHandler_Register_RejectsUnknownRole(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthService{})

	c, _ := postJSON(e, "/auth/register",
		`{"username":"alice","password":"secret123","name":"Alice","role":"admin"}`)
	err := handler.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	})

	c, _ := postJSON(e, "/auth/register",
		`{"username":"alice","password":"secret123","name":"Alice","role":"Admin"}`)
	if err := handler.Register(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthHandler_Token(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	handler := NewAuthHandler(&stubAuthService{
		loginFn: func(ctx context.Context, login, password string) (string, *domain.User, error) {
			if login != "alice" || password != "secret123" {
				return "", nil, domain.ErrUserNotFound
			}
			return "tkn", &domain.User{ID: "u-1", Username: "alice", Role: domain.RoleAdmin}, nil
		},
	})

	c, rec := postJSON(e, "/auth/token", `{"login":"alice","password":"secret123"}`)
	if err := handler.Token(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "tkn" {
		t.Fatalf("expected token, got %+v", resp)
	}

	c, _ = postJSON(e, "/auth/token", `{"login":"bob","password":"secret123"}`)
	if err := handler.Token(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("unknown user must look like bad credentials, got %v", err)
	}
}
