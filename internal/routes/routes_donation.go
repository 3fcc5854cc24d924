package routes

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/internal/controllers"
)

func SetupRoutesDonation(api fiber.Router, h *controllers.DonationHandler, auth, optionalAuth fiber.Handler) {
	api.Get("/campaigns", h.Campaigns)
	api.Get("/donations", h.Donations)
	api.Post("/donations", auth, h.Donate)

	// a token is optional here, it only fills myDonations
	api.Get("/donation-stats", optionalAuth, h.Stats)
}
