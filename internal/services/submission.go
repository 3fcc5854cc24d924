package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumni-portal/dto"
	"alumni-portal/internal/identity"
	"alumni-portal/internal/kv"
	"alumni-portal/internal/models"
	"alumni-portal/internal/repository"
	"alumni-portal/internal/utils"
)

var submissionSortKeys = utils.SortKeys[models.Submission]{
	"submittedAt": func(a, b models.Submission) int { return a.SubmittedAt.Compare(b.SubmittedAt) },
	"ideaTitle":   func(a, b models.Submission) int { return utils.CompareFold(a.IdeaTitle, b.IdeaTitle) },
}

type SubmissionService struct {
	policy      *Policy
	problems    *repository.Repository[models.ProblemStatement]
	submissions *repository.Repository[models.Submission]
	now         func() time.Time
}

// SubmitIdea stores the submission and then bumps the problem's
// submittedIdeasCount. The two writes are not atomic together.
func (s *SubmissionService) SubmitIdea(ctx context.Context, caller *identity.Identity, req dto.SubmitIdeaRequest) (*models.Submission, error) {
	if err := s.policy.Authorize(ctx, caller, ActionAuthenticated, nil); err != nil {
		return nil, err
	}
	problemID := strings.TrimSpace(req.ProblemID)
	if problemID == "" {
		return nil, Invalid("problemId is required")
	}
	exists, err := s.problems.Exists(ctx, problemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, NotFound("Problem statement not found")
	}

	sub := &models.Submission{
		ID:                uuid.NewString(),
		ProblemID:         problemID,
		UserID:            caller.ID,
		IdeaTitle:         req.IdeaData.IdeaTitle,
		Description:       req.IdeaData.Description,
		TechnicalApproach: req.IdeaData.TechnicalApproach,
		ExpectedImpact:    req.IdeaData.ExpectedImpact,
		TeamMembers:       req.IdeaData.TeamMembers,
		ContactEmail:      req.IdeaData.ContactEmail,
		Status:            models.SubmissionStatusSubmitted,
		SubmittedAt:       s.now().UTC(),
	}
	if err := s.submissions.Put(ctx, sub.ID, sub); err != nil {
		return nil, err
	}

	_, err = s.problems.Update(ctx, problemID, func(p *models.ProblemStatement) error {
		p.SubmittedIdeasCount++
		return nil
	})
	if err != nil {
		log.Printf("submit-idea: submission %s stored but count of problem %s not updated: %v", sub.ID, problemID, err)
		if errors.Is(err, kv.ErrNotFound) {
			return nil, NotFound("Problem statement not found")
		}
		return nil, err
	}
	return sub, nil
}

// ListForProblem is open to admins and to whoever created the problem.
func (s *SubmissionService) ListForProblem(ctx context.Context, caller *identity.Identity, problemID string, q ListQuery) (dto.Page[models.Submission], error) {
	p, err := s.problems.Get(ctx, problemID)
	if errors.Is(err, kv.ErrNotFound) {
		return dto.Page[models.Submission]{}, NotFound("Problem statement not found")
	}
	if err != nil {
		return dto.Page[models.Submission]{}, err
	}
	if err := s.policy.Authorize(ctx, caller, ActionListSubmissions, p); err != nil {
		return dto.Page[models.Submission]{}, err
	}

	all, err := s.submissions.List(ctx)
	if err != nil {
		return dto.Page[models.Submission]{}, err
	}
	matched := filter(all, func(sub models.Submission) bool {
		return sub.ProblemID == problemID && utils.MatchAny(q.Search, sub.IdeaTitle, sub.Description)
	})
	return page(matched, q, submissionSortKeys, "-submittedAt")
}
