package services

import (
	"cmp"
	"context"
	"errors"
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

type AlumniFilter struct {
	ListQuery
	Industry   string
	GradYear   int
	Mentorship *bool
}

var alumniSortKeys = utils.SortKeys[models.Alumni]{
	"name":      func(a, b models.Alumni) int { return utils.CompareFold(a.Name, b.Name) },
	"company":   func(a, b models.Alumni) int { return utils.CompareFold(a.Company, b.Company) },
	"gradYear":  func(a, b models.Alumni) int { return cmp.Compare(a.GradYear, b.GradYear) },
	"createdAt": func(a, b models.Alumni) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

type AlumniService struct {
	policy *Policy
	alumni *repository.Repository[models.Alumni]
	now    func() time.Time
}

func (s *AlumniService) List(ctx context.Context, f AlumniFilter) (dto.Page[models.Alumni], error) {
	all, err := s.alumni.List(ctx)
	if err != nil {
		return dto.Page[models.Alumni]{}, err
	}
	matched := filter(all, func(a models.Alumni) bool {
		if f.Industry != "" && !strings.EqualFold(f.Industry, a.Industry) {
			return false
		}
		if f.GradYear != 0 && f.GradYear != a.GradYear {
			return false
		}
		if f.Mentorship != nil && *f.Mentorship != a.IsAvailableForMentorship {
			return false
		}
		fields := append([]string{a.Name, a.Company, a.Position, a.Degree}, a.Skills...)
		return utils.MatchAny(f.Search, fields...)
	})
	return page(matched, f.ListQuery, alumniSortKeys, "name")
}

func (s *AlumniService) Get(ctx context.Context, id string) (*models.Alumni, error) {
	a, err := s.alumni.Get(ctx, id)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, NotFound("Alumni not found")
	}
	return a, err
}

func (s *AlumniService) Create(ctx context.Context, caller *identity.Identity, req dto.CreateAlumniRequest) (*models.Alumni, error) {
	if err := s.policy.Authorize(ctx, caller, ActionAuthenticated, nil); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	email := req.Email
	if email == "" {
		email = caller.Email
	}

	a := &models.Alumni{
		ID:                       uuid.NewString(),
		UserID:                   caller.ID,
		Name:                     req.Name,
		Email:                    email,
		GradYear:                 req.GradYear,
		Degree:                   req.Degree,
		Company:                  req.Company,
		Position:                 req.Position,
		Location:                 req.Location,
		Industry:                 req.Industry,
		Skills:                   nonNil(req.Skills),
		Bio:                      req.Bio,
		IsAvailableForMentorship: req.IsAvailableForMentorship,
		Experience:               req.Experience,
		Achievements:             req.Achievements,
		Interests:                req.Interests,
		JoinedDate:               now.Format(time.DateOnly),
		LastActive:               now.Format(time.DateOnly),
		CreatedAt:                now,
	}
	if err := s.alumni.Put(ctx, a.ID, a); err != nil {
		return nil, err
	}
	return a, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
