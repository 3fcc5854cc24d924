package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alumni-portal/dto"
	"alumni-portal/internal/identity"
	"alumni-portal/internal/kv"
	"alumni-portal/internal/services"
)

// ErrorHandler is the app-wide fiber error handler. Every non-2xx response
// leaves through here as {"error": "..."}; anything unexpected is logged and
// reported as a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, msg := classify(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg})
}

func classify(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			return fe.Code, "Internal server error"
		}
		return fe.Code, fe.Message
	}

	var se *services.Error
	if errors.As(err, &se) {
		switch {
		case errors.Is(se, services.ErrValidation):
			return fiber.StatusBadRequest, se.Msg
		case errors.Is(se, services.ErrForbidden):
			return fiber.StatusForbidden, se.Msg
		case errors.Is(se, services.ErrNotFound):
			return fiber.StatusNotFound, se.Msg
		case errors.Is(se, services.ErrConflict):
			return fiber.StatusConflict, se.Msg
		}
	}

	switch {
	case errors.Is(err, identity.ErrUnauthorized):
		return fiber.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, identity.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, identity.ErrEmailTaken), errors.Is(err, identity.ErrInvalidSignup):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, kv.ErrNotFound):
		return fiber.StatusNotFound, "Not found"
	case errors.Is(err, kv.ErrConflict):
		return fiber.StatusConflict, "Too many concurrent updates, retry the request"
	}
	return fiber.StatusInternalServerError, "Internal server error"
}
