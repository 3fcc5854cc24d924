package routes

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/internal/controllers"
)

func SetupRoutesEvent(api fiber.Router, h *controllers.EventHandler, auth fiber.Handler) {
	event := api.Group("/events")

	event.Get("/", h.List)
	event.Get("/:id", h.Get)
	event.Post("/", auth, h.Create)

	// 409 once capacity is reached
	event.Post("/:id/register", auth, h.Register)
}
