package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthUnavailable    = errors.New("authentication service unavailable")
	ErrSessionCorrupt     = errors.New("session data corrupt")
	ErrUnknownRole        = errors.New("unknown role")
	ErrUnknownFeature     = errors.New("unknown feature")
	ErrRouteNotFound      = errors.New("route not declared")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")
	ErrUnauthenticated    = errors.New("not authenticated")
)
