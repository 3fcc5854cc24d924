package services

import (
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

const (
	defaultPairGoals  = "Career development and guidance"
	defaultExpertise  = "General"
	unknownMentorName = "Mentor"
)

var (
	requestSortKeys = utils.SortKeys[models.MentorshipRequest]{
		"createdAt": func(a, b models.MentorshipRequest) int { return a.CreatedAt.Compare(b.CreatedAt) },
		"status":    func(a, b models.MentorshipRequest) int { return utils.CompareFold(a.Status, b.Status) },
	}
	pairSortKeys = utils.SortKeys[models.MentorshipPair]{
		"startDate": func(a, b models.MentorshipPair) int { return a.StartDate.Compare(b.StartDate) },
		"status":    func(a, b models.MentorshipPair) int { return utils.CompareFold(a.Status, b.Status) },
	}
)

type MentorshipService struct {
	policy   *Policy
	requests *repository.Repository[models.MentorshipRequest]
	pairs    *repository.Repository[models.MentorshipPair]
	mentors  *repository.Repository[models.Mentor]
	alumni   *repository.Repository[models.Alumni]
	now      func() time.Time
}

func (s *MentorshipService) CreateRequest(ctx context.Context, caller *identity.Identity, req dto.CreateMentorshipRequest) (*models.MentorshipRequest, error) {
	if err := s.policy.Authorize(ctx, caller, ActionAuthenticated, nil); err != nil {
		return nil, err
	}
	menteeID := req.MenteeID
	if menteeID == "" {
		menteeID = caller.ID
	}
	if menteeID == req.MentorID {
		return nil, Invalid("mentor and mentee must differ")
	}

	mentorName, expertise, err := s.describeMentor(ctx, req.MentorID)
	if err != nil {
		return nil, err
	}
	if req.Expertise != "" {
		expertise = req.Expertise
	}

	r := &models.MentorshipRequest{
		ID:         uuid.NewString(),
		MentorID:   req.MentorID,
		MenteeID:   menteeID,
		MentorName: mentorName,
		MenteeName: caller.DisplayName(),
		Message:    req.Message,
		Status:     models.RequestPending,
		Expertise:  expertise,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.requests.Put(ctx, r.ID, r); err != nil {
		return nil, err
	}
	return r, nil
}

// describeMentor looks the mentor up in the mentor directory, then among
// alumni profiles.
func (s *MentorshipService) describeMentor(ctx context.Context, mentorID string) (string, string, error) {
	m, err := s.mentors.Get(ctx, mentorID)
	if err == nil {
		expertise := defaultExpertise
		if len(m.Expertise) > 0 {
			expertise = m.Expertise[0]
		}
		return m.Name, expertise, nil
	}
	if !errors.Is(err, kv.ErrNotFound) {
		return "", "", err
	}

	a, err := s.alumni.Get(ctx, mentorID)
	if err == nil {
		expertise := defaultExpertise
		if len(a.Skills) > 0 {
			expertise = a.Skills[0]
		}
		return a.Name, expertise, nil
	}
	if !errors.Is(err, kv.ErrNotFound) {
		return "", "", err
	}
	return unknownMentorName, defaultExpertise, nil
}

func (s *MentorshipService) ListRequests(ctx context.Context, userID string, q ListQuery) (dto.Page[models.MentorshipRequest], error) {
	all, err := s.requests.List(ctx)
	if err != nil {
		return dto.Page[models.MentorshipRequest]{}, err
	}
	matched := filter(all, func(r models.MentorshipRequest) bool {
		return r.Involves(userID) && utils.MatchAny(q.Search, r.MentorName, r.MenteeName, r.Message)
	})
	return page(matched, q, requestSortKeys, "-createdAt")
}

func (s *MentorshipService) ListPairs(ctx context.Context, userID string, q ListQuery) (dto.Page[models.MentorshipPair], error) {
	all, err := s.pairs.List(ctx)
	if err != nil {
		return dto.Page[models.MentorshipPair]{}, err
	}
	matched := filter(all, func(p models.MentorshipPair) bool {
		return p.Involves(userID) && utils.MatchAny(q.Search, p.MentorName, p.MenteeName, p.Goals)
	})
	return page(matched, q, pairSortKeys, "-startDate")
}

// UpdateStatus accepts or declines a request. Only the mentor (or an Admin)
// may accept; either party may decline while no pair exists. The first accept
// links a pair id to the request inside the atomic update, so a request never
// gets more than one pair however often it is accepted. Every accept then
// makes sure that pair is stored, which repairs a pair write lost earlier.
func (s *MentorshipService) UpdateStatus(ctx context.Context, caller *identity.Identity, requestID, status string) (string, error) {
	action := ActionUpdateMentorshipRequest
	switch status {
	case models.RequestAccepted:
		action = ActionAcceptMentorshipRequest
	case models.RequestDeclined:
	default:
		return "", Invalid("status must be accepted or declined")
	}

	current, err := s.requests.Get(ctx, requestID)
	if errors.Is(err, kv.ErrNotFound) {
		return "", NotFound("Request not found")
	}
	if err != nil {
		return "", err
	}
	if err := s.policy.Authorize(ctx, caller, action, current); err != nil {
		return "", err
	}

	pairID := uuid.NewString()
	updated, err := s.requests.Update(ctx, requestID, func(r *models.MentorshipRequest) error {
		if status == models.RequestDeclined && r.PairID != "" {
			return Conflict("Request already accepted")
		}
		r.Status = status
		if status == models.RequestAccepted && r.PairID == "" {
			r.PairID = pairID
		}
		return nil
	})
	if errors.Is(err, kv.ErrNotFound) {
		return "", NotFound("Request not found")
	}
	if err != nil {
		return "", err
	}

	if status == models.RequestAccepted {
		if err := s.ensurePair(ctx, updated); err != nil {
			return "", err
		}
	}
	return "Request " + status, nil
}

// ensurePair stores the pair linked to an accepted request unless it exists.
func (s *MentorshipService) ensurePair(ctx context.Context, r *models.MentorshipRequest) error {
	exists, err := s.pairs.Exists(ctx, r.PairID)
	if err != nil || exists {
		return err
	}
	pair := &models.MentorshipPair{
		ID:         r.PairID,
		RequestID:  r.ID,
		MentorID:   r.MentorID,
		MenteeID:   r.MenteeID,
		MentorName: r.MentorName,
		MenteeName: r.MenteeName,
		StartDate:  s.now().UTC(),
		Status:     models.PairActive,
		Goals:      defaultPairGoals,
		Meetings:   0,
	}
	return s.pairs.Put(ctx, pair.ID, pair)
}
