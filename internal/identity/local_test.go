package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"alumni-portal/internal/kv"
)

func newTestProvider() *LocalProvider {
	p := NewLocalProvider(kv.NewMemoryStore(), "test-secret", time.Hour)
	p.cost = bcrypt.MinCost
	return p
}

func TestCreateUserAndSignIn(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	id, err := p.CreateUser(ctx, " Ada@Example.com ", "hunter22", map[string]any{"name": "Ada"})
	require.NoError(t, err)
	assert.NotEmpty(t, id.ID)
	assert.Equal(t, "ada@example.com", id.Email)
	assert.Equal(t, "Ada", id.DisplayName())

	_, err = p.CreateUser(ctx, "ada@example.com", "another1", nil)
	assert.ErrorIs(t, err, ErrEmailTaken)

	token, signedIn, err := p.SignIn(ctx, "ADA@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, id.ID, signedIn.ID)

	resolved, err := p.ResolveToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, id.ID, resolved.ID)
	assert.Equal(t, "Ada", resolved.DisplayName())

	_, _, err = p.SignIn(ctx, "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = p.SignIn(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserValidation(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()

	_, err := p.CreateUser(ctx, "not-an-email", "hunter22", nil)
	assert.ErrorIs(t, err, ErrInvalidSignup)

	_, err = p.CreateUser(ctx, "a@b.co", "123", nil)
	assert.ErrorIs(t, err, ErrInvalidSignup)
}

func TestResolveTokenRejects(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider()
	_, err := p.CreateUser(ctx, "ada@example.com", "hunter22", nil)
	require.NoError(t, err)

	_, err = p.ResolveToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)

	other := NewLocalProvider(p.store, "other-secret", time.Hour)
	other.cost = bcrypt.MinCost
	foreign, _, err := other.SignIn(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	_, err = p.ResolveToken(ctx, foreign)
	assert.ErrorIs(t, err, ErrUnauthorized)

	token, _, err := p.SignIn(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	p.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = p.ResolveToken(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveTokenUnknownUser(t *testing.T) {
	p := newTestProvider()
	claims := Claims{
		UID:              "ghost",
		Email:            "ghost@example.com",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	require.NoError(t, err)

	_, err = p.ResolveToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
