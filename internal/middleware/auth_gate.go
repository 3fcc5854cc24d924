package middleware

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"alumni-portal/internal/identity"
)

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if len(auth) < 7 || !strings.EqualFold(auth[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}

func resolve(c *fiber.Ctx, p identity.Provider) (identity.Identity, error) {
	token := bearerToken(c)
	if token == "" {
		return identity.Identity{}, identity.ErrUnauthorized
	}
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()
	return p.ResolveToken(ctx, token)
}

// RequireAuth rejects the request with 401 unless the bearer token resolves
// to an identity.
func RequireAuth(p identity.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := resolve(c, p)
		if err != nil {
			if !errors.Is(err, identity.ErrUnauthorized) {
				log.Printf("auth: resolve token: %v", err)
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		}
		setIdentity(c, id)
		return c.Next()
	}
}

// OptionalAuth attaches the identity when the token resolves and lets the
// request through either way.
func OptionalAuth(p identity.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, err := resolve(c, p); err == nil {
			setIdentity(c, id)
		}
		return c.Next()
	}
}
