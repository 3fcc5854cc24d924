package controllers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-portal/dto"
	"alumni-portal/internal/identity"
	"alumni-portal/internal/kv"
	"alumni-portal/internal/services"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{services.Invalid("title is required"), fiber.StatusBadRequest, "title is required"},
		{services.Forbidden("Access denied"), fiber.StatusForbidden, "Access denied"},
		{services.NotFound("Event not found"), fiber.StatusNotFound, "Event not found"},
		{fmt.Errorf("register: %w", services.Conflict("Event is full")), fiber.StatusConflict, "Event is full"},
		{identity.ErrUnauthorized, fiber.StatusUnauthorized, "Unauthorized"},
		{identity.ErrInvalidCredentials, fiber.StatusUnauthorized, identity.ErrInvalidCredentials.Error()},
		{identity.ErrEmailTaken, fiber.StatusBadRequest, identity.ErrEmailTaken.Error()},
		{fmt.Errorf("get: %w", kv.ErrNotFound), fiber.StatusNotFound, "Not found"},
		{kv.ErrConflict, fiber.StatusConflict, "Too many concurrent updates, retry the request"},
		{fiber.NewError(fiber.StatusBadRequest, "Invalid request body"), fiber.StatusBadRequest, "Invalid request body"},
		{fiber.ErrServiceUnavailable, fiber.StatusServiceUnavailable, "Internal server error"},
		{errors.New("dial tcp: refused"), fiber.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		status, msg := classify(tt.err)
		assert.Equal(t, tt.status, status, tt.err.Error())
		assert.Equal(t, tt.msg, msg, tt.err.Error())
	}
}

func TestDescribeUsesJSONNames(t *testing.T) {
	err := validate.Struct(dto.SubmitIdeaRequest{IdeaData: dto.IdeaData{ContactEmail: "nope"}})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	msg := describe(verrs)
	assert.Contains(t, msg, "problemId is required")
	assert.Contains(t, msg, "ideaData.ideaTitle is required")
	assert.Contains(t, msg, "ideaData.contactEmail must be a valid email")

	err = validate.Struct(dto.UpdateMentorshipRequest{Status: "maybe"})
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "status must be one of [accepted declined]", describe(verrs))
}
