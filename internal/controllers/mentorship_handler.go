package controllers

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/dto"
	"alumni-portal/internal/middleware"
	"alumni-portal/internal/services"
)

type MentorshipHandler struct {
	mentorship *services.MentorshipService
}

func NewMentorshipHandler(m *services.MentorshipService) *MentorshipHandler {
	return &MentorshipHandler{mentorship: m}
}

// CreateRequest godoc
// @Summary Ask a mentor for mentorship
// @Description menteeId defaults to the caller.
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateMentorshipRequest true "Request"
// @Success 201 {object} models.MentorshipRequest
// @Failure 400 {object} dto.ErrorResponse
// @Router /mentorship-requests [post]
func (h *MentorshipHandler) CreateRequest(c *fiber.Ctx) error {
	var body dto.CreateMentorshipRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	r, err := h.mentorship.CreateRequest(ctx, middleware.IdentityFrom(c), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

// ListRequests godoc
// @Summary Mentorship requests where the user is mentor or mentee
// @Tags mentorship
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.Page[models.MentorshipRequest]
// @Router /mentorship-requests/{userId} [get]
func (h *MentorshipHandler) ListRequests(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	pg, err := h.mentorship.ListRequests(ctx, c.Params("userId"), listQuery(c, 0))
	if err != nil {
		return err
	}
	return c.JSON(pg)
}

// ListPairs godoc
// @Summary Mentorship pairs where the user is mentor or mentee
// @Tags mentorship
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.Page[models.MentorshipPair]
// @Router /mentorship-pairs/{userId} [get]
func (h *MentorshipHandler) ListPairs(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	pg, err := h.mentorship.ListPairs(ctx, c.Params("userId"), listQuery(c, 0))
	if err != nil {
		return err
	}
	return c.JSON(pg)
}

// UpdateStatus godoc
// @Summary Accept or decline a mentorship request
// @Description Only the mentor or an Admin may accept; the mentee may also decline.
// @Description Accepting creates one active pair. An accepted request cannot be declined.
// @Tags mentorship
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param body body dto.UpdateMentorshipRequest true "New status"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Request already accepted"
// @Router /mentorship-requests/{id} [patch]
func (h *MentorshipHandler) UpdateStatus(c *fiber.Ctx) error {
	var body dto.UpdateMentorshipRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	msg, err := h.mentorship.UpdateStatus(ctx, middleware.IdentityFrom(c), c.Params("id"), body.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}
