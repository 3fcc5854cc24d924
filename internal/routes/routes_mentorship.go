package routes

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/internal/controllers"
)

func SetupRoutesMentorship(api fiber.Router, h *controllers.MentorshipHandler, auth fiber.Handler) {
	api.Post("/mentorship-requests", auth, h.CreateRequest)
	api.Get("/mentorship-requests/:userId", h.ListRequests)

	// PATCH {status: accepted|declined}; accepted creates the pair
	api.Patch("/mentorship-requests/:id", auth, h.UpdateStatus)

	api.Get("/mentorship-pairs/:userId", h.ListPairs)
}
