package services

import (
	"cmp"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"alumni-portal/dto"
	"alumni-portal/internal/identity"
	"alumni-portal/internal/kv"
	"alumni-portal/internal/models"
	"alumni-portal/internal/repository"
	"alumni-portal/internal/utils"
)

// DefaultProblemLimit is the page size of the problem statement list when
// the caller does not pass one.
const DefaultProblemLimit = 10

type ProblemFilter struct {
	ListQuery
	Category string
	Theme    string
}

var problemSortKeys = utils.SortKeys[models.ProblemStatement]{
	"title":               func(a, b models.ProblemStatement) int { return utils.CompareFold(a.Title, b.Title) },
	"organization":        func(a, b models.ProblemStatement) int { return utils.CompareFold(a.Organization, b.Organization) },
	"psNumber":            func(a, b models.ProblemStatement) int { return utils.CompareFold(a.PSNumber, b.PSNumber) },
	"deadline":            func(a, b models.ProblemStatement) int { return cmp.Compare(a.Deadline, b.Deadline) },
	"submittedIdeasCount": func(a, b models.ProblemStatement) int { return cmp.Compare(a.SubmittedIdeasCount, b.SubmittedIdeasCount) },
	"createdAt":           func(a, b models.ProblemStatement) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

type ProblemService struct {
	policy   *Policy
	problems *repository.Repository[models.ProblemStatement]
	now      func() time.Time
}

// List matches search against title and organization ignoring case; category
// and theme must match exactly.
func (s *ProblemService) List(ctx context.Context, f ProblemFilter) (dto.Page[models.ProblemStatement], error) {
	all, err := s.problems.List(ctx)
	if err != nil {
		return dto.Page[models.ProblemStatement]{}, err
	}
	matched := filter(all, func(p models.ProblemStatement) bool {
		return utils.MatchAny(f.Search, p.Title, p.Organization) &&
			utils.MatchExact(f.Category, p.Category) &&
			utils.MatchExact(f.Theme, p.Theme)
	})
	return page(matched, f.ListQuery, problemSortKeys, "")
}

func (s *ProblemService) Get(ctx context.Context, id string) (*models.ProblemStatement, error) {
	p, err := s.problems.Get(ctx, id)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, NotFound("Problem statement not found")
	}
	return p, err
}

func (s *ProblemService) Create(ctx context.Context, caller *identity.Identity, req dto.CreateProblemRequest) (*models.ProblemStatement, error) {
	if err := s.policy.Authorize(ctx, caller, ActionCreateProblem, nil); err != nil {
		return nil, err
	}

	p := &models.ProblemStatement{
		ID:                  uuid.NewString(),
		Title:               req.Title,
		Description:         req.Description,
		Organization:        req.Organization,
		Department:          req.Department,
		Category:            req.Category,
		Theme:               req.Theme,
		PSNumber:            req.PSNumber,
		Deadline:            req.Deadline,
		Impact:              req.Impact,
		ExpectedOutcomes:    req.ExpectedOutcomes,
		Stakeholders:        req.Stakeholders,
		SubmittedIdeasCount: 0,
		CreatedAt:           s.now().UTC(),
		CreatedBy:           caller.ID,
	}
	if err := s.problems.Put(ctx, p.ID, p); err != nil {
		return nil, err
	}
	return p, nil
}
