package routes

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/internal/controllers"
)

func SetupRoutesProblem(api fiber.Router, h *controllers.ProblemHandler, auth fiber.Handler) {
	ps := api.Group("/problem-statements")

	// GET /problem-statements?page=1&limit=10&search=&category=Software&theme=
	ps.Get("/", h.List)
	ps.Get("/:id", h.Get)
	ps.Get("/:id/submissions", auth, h.ListSubmissions)
	ps.Post("/", auth, h.Create)

	api.Post("/submit-idea", auth, h.SubmitIdea)
}
