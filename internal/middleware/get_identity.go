package middleware

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/internal/identity"
)

const localsIdentity = "identity"

func setIdentity(c *fiber.Ctx, id identity.Identity) {
	c.Locals(localsIdentity, &id)
}

// IdentityFrom returns the identity set by the auth middleware, or nil.
func IdentityFrom(c *fiber.Ctx) *identity.Identity {
	id, _ := c.Locals(localsIdentity).(*identity.Identity)
	return id
}
