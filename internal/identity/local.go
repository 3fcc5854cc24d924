package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"alumni-portal/internal/kv"
)

const (
	kindIdentity      = "identity"
	minPasswordLength = 6
)

type credential struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"passwordHash"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func (c credential) identity() Identity {
	return Identity{ID: c.ID, Email: c.Email, Metadata: c.Metadata, CreatedAt: c.CreatedAt}
}

type Claims struct {
	UID   string `json:"uid,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// LocalProvider keeps bcrypt credentials under identity:<email> and issues
// HS256 tokens.
type LocalProvider struct {
	store  kv.Store
	secret []byte
	ttl    time.Duration
	cost   int
	now    func() time.Time
}

func NewLocalProvider(store kv.Store, secret string, ttl time.Duration) *LocalProvider {
	return &LocalProvider{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
}

func (p *LocalProvider) CreateUser(ctx context.Context, email, password string, metadata map[string]any) (Identity, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return Identity{}, fmt.Errorf("%w: invalid email address", ErrInvalidSignup)
	}
	if len(password) < minPasswordLength {
		return Identity{}, fmt.Errorf("%w: password should be at least %d characters", ErrInvalidSignup, minPasswordLength)
	}

	key := kv.Key(kindIdentity, email)
	if _, err := p.store.Get(ctx, key); err == nil {
		return Identity{}, ErrEmailTaken
	} else if !errors.Is(err, kv.ErrNotFound) {
		return Identity{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return Identity{}, err
	}

	cred := credential{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Metadata:     metadata,
		CreatedAt:    p.now().UTC(),
	}
	raw, err := json.Marshal(cred)
	if err != nil {
		return Identity{}, err
	}
	if err := p.store.Set(ctx, key, raw); err != nil {
		return Identity{}, err
	}
	return cred.identity(), nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (string, Identity, error) {
	cred, err := p.load(ctx, normalizeEmail(email))
	if errors.Is(err, kv.ErrNotFound) {
		return "", Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", Identity{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", Identity{}, ErrInvalidCredentials
	}

	now := p.now()
	claims := Claims{
		UID:   cred.ID,
		Email: cred.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cred.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", Identity{}, err
	}
	return token, cred.identity(), nil
}

func (p *LocalProvider) ResolveToken(ctx context.Context, tokenStr string) (Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) { return p.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil || !token.Valid {
		return Identity{}, ErrUnauthorized
	}

	uid := claims.UID
	if uid == "" {
		uid = claims.Subject
	}
	if uid == "" || claims.Email == "" {
		return Identity{}, ErrUnauthorized
	}

	// the credential must still exist and belong to the same id
	cred, err := p.load(ctx, claims.Email)
	if errors.Is(err, kv.ErrNotFound) {
		return Identity{}, ErrUnauthorized
	}
	if err != nil {
		return Identity{}, err
	}
	if cred.ID != uid {
		return Identity{}, ErrUnauthorized
	}
	return cred.identity(), nil
}

func (p *LocalProvider) load(ctx context.Context, email string) (credential, error) {
	var cred credential
	raw, err := p.store.Get(ctx, kv.Key(kindIdentity, email))
	if err != nil {
		return cred, err
	}
	err = json.Unmarshal(raw, &cred)
	return cred, err
}
