package controllers

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/dto"
	"alumni-portal/internal/middleware"
	"alumni-portal/internal/services"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(u *services.UserService) *AuthHandler {
	return &AuthHandler{users: u}
}

// Signup godoc
// @Summary Register a new account
// @Description Creates the identity and the portal profile. Role defaults to Student.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.SignupRequest true "Signup payload"
// @Success 200 {object} dto.SignupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var body dto.SignupRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	id, err := h.users.Signup(ctx, body)
	if err != nil {
		return err
	}
	return c.JSON(dto.SignupResponse{User: id})
}

// Login godoc
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	resp, err := h.users.Login(ctx, body)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Profile godoc
// @Summary Current user's profile
// @Description Falls back to an Alumni profile when no user record is stored.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} dto.ErrorResponse
// @Router /user-profile [get]
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.users.Profile(ctx, middleware.IdentityFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(u)
}
