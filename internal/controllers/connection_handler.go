package controllers

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/dto"
	"alumni-portal/internal/middleware"
	"alumni-portal/internal/services"
)

type ConnectionHandler struct {
	connections *services.ConnectionService
	contacts    *services.ContactService
}

func NewConnectionHandler(conn *services.ConnectionService, contact *services.ContactService) *ConnectionHandler {
	return &ConnectionHandler{connections: conn, contacts: contact}
}

// Create godoc
// @Summary Send a connection request
// @Tags connections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ConnectionRequest true "Connection"
// @Success 201 {object} models.Connection
// @Router /connections [post]
func (h *ConnectionHandler) Create(c *fiber.Ctx) error {
	var body dto.ConnectionRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	conn, err := h.connections.Create(ctx, middleware.IdentityFrom(c), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(conn)
}

// @Summary Connections sent or received by a user
// @Tags connections
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.Page[models.Connection]
// @Router /connections/{userId} [get]
func (h *ConnectionHandler) ListForUser(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	pg, err := h.connections.ListForUser(ctx, c.Params("userId"), listQuery(c, 0))
	if err != nil {
		return err
	}
	return c.JSON(pg)
}

// Contact godoc
// @Summary Public contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param body body dto.ContactRequest true "Message"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /contact [post]
func (h *ConnectionHandler) Contact(c *fiber.Ctx) error {
	var body dto.ContactRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	msg, err := h.contacts.Submit(ctx, body)
	if err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: msg})
}
