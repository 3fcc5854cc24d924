package routes

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/internal/controllers"
)

func SetupRoutesAuth(api fiber.Router, h *controllers.AuthHandler, auth fiber.Handler) {
	api.Post("/auth/signup", h.Signup)
	api.Post("/auth/login", h.Login)

	// role and name for session bootstrap
	api.Get("/user-profile", auth, h.Profile)
}
