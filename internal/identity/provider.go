// Package identity authenticates callers. The portal only ever sees a
// Provider; LocalProvider is the built-in implementation backed by the
// key-value store.
package identity

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrInvalidCredentials = errors.New("Invalid login credentials")
	ErrEmailTaken         = errors.New("A user with this email address has already been registered")
	ErrInvalidSignup      = errors.New("invalid signup")
)

// Identity is an authenticated principal as the provider knows it.
type Identity struct {
	ID        string         `json:"id"`
	Email     string         `json:"email"`
	Metadata  map[string]any `json:"user_metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// DisplayName is the metadata name, falling back to the email.
func (i Identity) DisplayName() string {
	if name, ok := i.Metadata["name"].(string); ok && strings.TrimSpace(name) != "" {
		return name
	}
	return i.Email
}

type Provider interface {
	CreateUser(ctx context.Context, email, password string, metadata map[string]any) (Identity, error)
	SignIn(ctx context.Context, email, password string) (string, Identity, error)
	// ResolveToken returns ErrUnauthorized for any token it cannot vouch for.
	ResolveToken(ctx context.Context, token string) (Identity, error)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
