package controllers

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/dto"
	"alumni-portal/internal/middleware"
	"alumni-portal/internal/services"
	"alumni-portal/internal/utils"
)

type AlumniHandler struct {
	alumni  *services.AlumniService
	mentors *services.MentorService
}

func NewAlumniHandler(a *services.AlumniService, m *services.MentorService) *AlumniHandler {
	return &AlumniHandler{alumni: a, mentors: m}
}

// List godoc
// @Summary Alumni directory
// @Tags alumni
// @Produce json
// @Param search query string false "Name, company, position or skill"
// @Param industry query string false "Industry"
// @Param gradYear query int false "Graduation year"
// @Param mentorship query bool false "Only alumni available for mentorship"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param sort query string false "name, company, gradYear or createdAt"
// @Success 200 {object} dto.Page[models.Alumni]
// @Router /alumni [get]
func (h *AlumniHandler) List(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	pg, err := h.alumni.List(ctx, services.AlumniFilter{
		ListQuery:  listQuery(c, 0),
		Industry:   c.Query("industry"),
		GradYear:   queryInt(c, "gradYear"),
		Mentorship: utils.ParseBoolFilter(c.Query("mentorship")),
	})
	if err != nil {
		return err
	}
	return c.JSON(pg)
}

// Get godoc
// @Summary Alumni profile
// @Tags alumni
// @Produce json
// @Param id path string true "Alumni ID"
// @Success 200 {object} models.Alumni
// @Failure 404 {object} dto.ErrorResponse
// @Router /alumni/{id} [get]
func (h *AlumniHandler) Get(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.alumni.Get(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(a)
}

// Create godoc
// @Summary Create an alumni profile for the caller
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateAlumniRequest true "Profile"
// @Success 201 {object} models.Alumni
// @Failure 400 {object} dto.ErrorResponse
// @Router /alumni [post]
func (h *AlumniHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateAlumniRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.alumni.Create(ctx, middleware.IdentityFrom(c), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// Mentors godoc
// @Summary Mentor directory
// @Tags mentorship
// @Produce json
// @Param industry query string false "Industry"
// @Param availability query string false "available, busy or unavailable"
// @Param search query string false "Name, company or expertise"
// @Success 200 {object} dto.Page[models.Mentor]
// @Router /mentors [get]
func (h *AlumniHandler) Mentors(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	pg, err := h.mentors.List(ctx, services.MentorFilter{
		ListQuery:    listQuery(c, 0),
		Industry:     c.Query("industry"),
		Availability: c.Query("availability"),
	})
	if err != nil {
		return err
	}
	return c.JSON(pg)
}
