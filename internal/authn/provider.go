// Package authn talks to the external identity provider (a GoTrue-compatible
// API such as Supabase auth). The provider owns credential verification and
// token issuance; this package only relays.
package authn

import (
	"context"

	"github.com/google/uuid"
)

// User is the provider-issued identity. It is never persisted here; owned
// rows reference it by teacher_id only.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Session is the token bundle returned by a password sign-in.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	User         User   `json:"user"`
}

type Provider interface {
	// SignInWithPassword exchanges credentials for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	// GetUser validates a bearer token and returns the user it belongs to.
	GetUser(ctx context.Context, token string) (*User, error)
}

// APIError is a non-2xx answer from the provider.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
