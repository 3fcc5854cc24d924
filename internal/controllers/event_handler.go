package controllers

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/dto"
	"alumni-portal/internal/middleware"
	"alumni-portal/internal/services"
	"alumni-portal/internal/utils"
)

type EventHandler struct {
	events *services.EventService
}

func NewEventHandler(e *services.EventService) *EventHandler {
	return &EventHandler{events: e}
}

// List godoc
// @Summary List events
// @Tags events
// @Produce json
// @Param type query string false "networking, reunion, workshop, career, social or fundraising"
// @Param active query bool false "Only active or inactive events"
// @Param search query string false "Title, location or organizer"
// @Param sort query string false "date, title, registeredCount or createdAt" default(date)
// @Success 200 {object} dto.Page[models.Event]
// @Router /events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	pg, err := h.events.List(ctx, services.EventFilter{
		ListQuery: listQuery(c, 0),
		Type:      c.Query("type"),
		Active:    utils.ParseBoolFilter(c.Query("active")),
	})
	if err != nil {
		return err
	}
	return c.JSON(pg)
}

// Get godoc
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	e, err := h.events.Get(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(e)
}

// Create godoc
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateEventRequest true "Event"
// @Success 201 {object} models.Event
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	e, err := h.events.Create(ctx, middleware.IdentityFrom(c), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

// Register godoc
// @Summary Register the caller for an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Event is full"
// @Router /events/{id}/register [post]
func (h *EventHandler) Register(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.events.Register(ctx, middleware.IdentityFrom(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Registration successful"})
}
