package routes

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/internal/controllers"
)

func SetupRoutesAdmin(api fiber.Router, h *controllers.AdminHandler, auth fiber.Handler) {
	api.Get("/analytics", auth, h.Analytics)
	api.Post("/init-sample-data", h.InitSampleData)
}
