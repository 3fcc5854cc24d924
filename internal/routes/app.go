package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alumni-portal/config"
	"alumni-portal/internal/controllers"
	"alumni-portal/internal/identity"
	"alumni-portal/internal/kv"
	"alumni-portal/internal/metrics"
	"alumni-portal/internal/middleware"
	"alumni-portal/internal/services"
)

type Deps struct {
	Store    kv.Store
	Identity identity.Provider // LocalProvider over Store when nil
	Config   config.Config
}

// NewApp builds the fiber app with every route of the portal mounted under
// Config.RoutePrefix. /metrics and /docs stay at the root.
func NewApp(d Deps) *fiber.App {
	metrics.Register()

	idp := d.Identity
	if idp == nil {
		idp = identity.NewLocalProvider(d.Store, d.Config.JWTSecret, time.Duration(d.Config.JWTExpiryHours)*time.Hour)
	}
	svc := services.New(d.Store, idp, services.Options{AllowAdminSignup: d.Config.AllowAdminSignup})

	app := fiber.New(fiber.Config{
		AppName:      "alumni-portal",
		ErrorHandler: controllers.ErrorHandler,
	})
	// Metrics sits outside recover so recovered panics are counted as 500s.
	app.Use(middleware.Metrics())
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  d.Config.CORSOrigins,
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Length",
		MaxAge:        600,
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/docs/*", swagger.HandlerDefault)

	requireAuth := middleware.RequireAuth(idp)
	optionalAuth := middleware.OptionalAuth(idp)

	api := app.Group(d.Config.RoutePrefix)
	admin := controllers.NewAdminHandler(svc.Analytics, svc.Seed)
	api.Get("/health", admin.Health)

	SetupRoutesAuth(api, controllers.NewAuthHandler(svc.Users), requireAuth)
	SetupRoutesProblem(api, controllers.NewProblemHandler(svc.Problems, svc.Submissions), requireAuth)
	SetupRoutesAlumni(api, controllers.NewAlumniHandler(svc.Alumni, svc.Mentors), requireAuth)
	SetupRoutesEvent(api, controllers.NewEventHandler(svc.Events), requireAuth)
	SetupRoutesMentorship(api, controllers.NewMentorshipHandler(svc.Mentorship), requireAuth)
	SetupRoutesDonation(api, controllers.NewDonationHandler(svc.Donations), requireAuth, optionalAuth)
	SetupRoutesCommunication(api, controllers.NewCommunicationHandler(svc.Communication), requireAuth)
	SetupRoutesConnection(api, controllers.NewConnectionHandler(svc.Connections, svc.Contacts), requireAuth)
	SetupRoutesAdmin(api, admin, requireAuth)

	return app
}
