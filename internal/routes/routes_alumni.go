package routes

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/internal/controllers"
)

func SetupRoutesAlumni(api fiber.Router, h *controllers.AlumniHandler, auth fiber.Handler) {
	api.Get("/alumni", h.List)
	api.Get("/alumni/:id", h.Get)
	api.Post("/alumni", auth, h.Create)

	api.Get("/mentors", h.Mentors)
}
