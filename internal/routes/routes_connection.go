package routes

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/internal/controllers"
)

func SetupRoutesConnection(api fiber.Router, h *controllers.ConnectionHandler, auth fiber.Handler) {
	api.Post("/connections", auth, h.Create)
	api.Get("/connections/:userId", h.ListForUser)

	// public, no token
	api.Post("/contact", h.Contact)
}
