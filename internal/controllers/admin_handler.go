package controllers

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/dto"
	"alumni-portal/internal/middleware"
	"alumni-portal/internal/services"
)

type AdminHandler struct {
	analytics *services.AnalyticsService
	seed      *services.SeedService
}

func NewAdminHandler(a *services.AnalyticsService, s *services.SeedService) *AdminHandler {
	return &AdminHandler{analytics: a, seed: s}
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *AdminHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Analytics godoc
// @Summary Portal-wide statistics
// @Description Admin only. Scans every record on each call.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Analytics
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /analytics [get]
func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	out, err := h.analytics.Overview(ctx, middleware.IdentityFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// InitSampleData godoc
// @Summary Seed demo data
// @Description Does nothing when any alumni record exists.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /init-sample-data [post]
func (h *AdminHandler) InitSampleData(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	msg, err := h.seed.InitSampleData(ctx)
	if err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}
