// Package session implements the server-side session store used by the
// authentication layer. A session is an opaque token mapped to a user id
// with a fixed TTL; handlers carry the token in an HttpOnly cookie.
package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// CookieName is the cookie that carries the session token.
const CookieName = "medlight_session"

// ErrNotFound is returned when a token does not denote a live session.
var ErrNotFound = errors.New("session not found")

// Store persists active sessions.
type Store interface {
	// Create opens a session for the user and returns its token.
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	// Get resolves a token to the user it was issued for.
	Get(ctx context.Context, token string) (uuid.UUID, error)
	// Destroy closes the session. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}

func newToken() string {
	return uuid.New().String()
}
