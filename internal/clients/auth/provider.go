// Package auth manages sign-in sessions. Sessions live in Redis and every
// sign-in, sign-out and account deletion is announced on a pub/sub channel.
package auth

//go:generate mockgen -destination=mock/mock_provider.go -package=authmock github.com/KirkDiggler/poketeam-api/internal/clients/auth Provider,Verifier

import (
	"context"
	"time"
)

// Identity is a signed-in user
type Identity struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// Session is the result of a sign-in
type Session struct {
	Token     string    `json:"token"`
	Identity  Identity  `json:"identity"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EventType names an auth state change
type EventType string

// Auth state changes
const (
	EventSignedIn       EventType = "signed_in"
	EventSignedOut      EventType = "signed_out"
	EventAccountDeleted EventType = "account_deleted"
)

// Event is published whenever a user's auth state changes
type Event struct {
	Type   EventType `json:"type"`
	UserID string    `json:"user_id"`
	At     time.Time `json:"at"`
}

// Verifier proves who a sign-in credential belongs to
type Verifier interface {
	// Verify checks the credential and returns the identity it proves
	// Returns errors.Unauthenticated when the credential is not valid
	Verify(ctx context.Context, credential string) (*Identity, error)
}

// Provider is the authentication collaborator
type Provider interface {
	// SignIn verifies the credential and starts a session for its identity
	// Returns errors.InvalidArgument for a blank credential
	// Returns errors.Unauthenticated when the credential does not verify
	SignIn(ctx context.Context, credential string) (*Session, error)

	// CurrentUser resolves a session token. A blank, unknown or expired token
	// yields a nil identity and no error.
	CurrentUser(ctx context.Context, token string) (*Identity, error)

	// SignOut ends the session. Signing out twice is not an error.
	SignOut(ctx context.Context, token string) error

	// Subscribe calls fn for every auth event until the returned function is
	// called or ctx is done
	Subscribe(ctx context.Context, fn func(Event)) (func(), error)

	// DeleteAccount ends every session of the token's user
	// Returns errors.Unauthenticated when the token is not signed in
	DeleteAccount(ctx context.Context, token string) error
}
