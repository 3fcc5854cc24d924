package controllers

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/dto"
	"alumni-portal/internal/middleware"
	"alumni-portal/internal/models"
	"alumni-portal/internal/services"
)

type ProblemHandler struct {
	problems    *services.ProblemService
	submissions *services.SubmissionService
}

func NewProblemHandler(p *services.ProblemService, s *services.SubmissionService) *ProblemHandler {
	return &ProblemHandler{problems: p, submissions: s}
}

// List godoc
// @Summary List problem statements
// @Description Search matches title and organization ignoring case. Category and theme match exactly.
// @Tags problem-statements
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10) maximum(100)
// @Param search query string false "Search text"
// @Param category query string false "Exact category, e.g. Software"
// @Param theme query string false "Exact theme"
// @Param sort query string false "Sort field, prefix with - for descending"
// @Success 200 {object} dto.ProblemPage[models.ProblemStatement]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /problem-statements [get]
func (h *ProblemHandler) List(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	pg, err := h.problems.List(ctx, services.ProblemFilter{
		ListQuery: listQuery(c, services.DefaultProblemLimit),
		Category:  c.Query("category"),
		Theme:     c.Query("theme"),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.ProblemPage[models.ProblemStatement]{
		Items:      pg.Items,
		Problems:   pg.Items,
		Pagination: pg.Pagination,
	})
}

// Get godoc
// @Summary Get a problem statement
// @Tags problem-statements
// @Produce json
// @Param id path string true "Problem statement ID"
// @Success 200 {object} models.ProblemStatement
// @Failure 404 {object} dto.ErrorResponse
// @Router /problem-statements/{id} [get]
func (h *ProblemHandler) Get(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.problems.Get(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// Create godoc
// @Summary Create a problem statement
// @Description Admin only.
// @Tags problem-statements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateProblemRequest true "Problem statement"
// @Success 201 {object} models.ProblemStatement
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /problem-statements [post]
func (h *ProblemHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateProblemRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.problems.Create(ctx, middleware.IdentityFrom(c), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// ListSubmissions godoc
// @Summary List submissions for a problem statement
// @Description Admins and the creator of the problem statement only.
// @Tags problem-statements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Problem statement ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Page[models.Submission]
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /problem-statements/{id}/submissions [get]
func (h *ProblemHandler) ListSubmissions(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	pg, err := h.submissions.ListForProblem(ctx, middleware.IdentityFrom(c), c.Params("id"), listQuery(c, 0))
	if err != nil {
		return err
	}
	return c.JSON(pg)
}

// SubmitIdea godoc
// @Summary Submit an idea for a problem statement
// @Tags problem-statements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SubmitIdeaRequest true "Idea"
// @Success 201 {object} models.Submission
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /submit-idea [post]
func (h *ProblemHandler) SubmitIdea(c *fiber.Ctx) error {
	var body dto.SubmitIdeaRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	sub, err := h.submissions.SubmitIdea(ctx, middleware.IdentityFrom(c), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(sub)
}
