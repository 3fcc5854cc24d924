package services

import (
	"cmp"
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"alumni-portal/dto"
	"alumni-portal/internal/identity"
	"alumni-portal/internal/kv"
	"alumni-portal/internal/models"
	"alumni-portal/internal/repository"
	"alumni-portal/internal/utils"
)

type EventFilter struct {
	ListQuery
	Type   string
	Active *bool
}

var eventSortKeys = utils.SortKeys[models.Event]{
	"date":            func(a, b models.Event) int { return cmp.Compare(a.Date+a.Time, b.Date+b.Time) },
	"title":           func(a, b models.Event) int { return utils.CompareFold(a.Title, b.Title) },
	"registeredCount": func(a, b models.Event) int { return cmp.Compare(a.RegisteredCount, b.RegisteredCount) },
	"createdAt":       func(a, b models.Event) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

type EventService struct {
	policy        *Policy
	events        *repository.Repository[models.Event]
	registrations *repository.Repository[models.Registration]
	now           func() time.Time
}

func (s *EventService) List(ctx context.Context, f EventFilter) (dto.Page[models.Event], error) {
	all, err := s.events.List(ctx)
	if err != nil {
		return dto.Page[models.Event]{}, err
	}
	matched := filter(all, func(e models.Event) bool {
		if f.Active != nil && *f.Active != e.IsActive {
			return false
		}
		return utils.MatchExact(f.Type, e.Type) && utils.MatchAny(f.Search, e.Title, e.Location, e.Organizer)
	})
	return page(matched, f.ListQuery, eventSortKeys, "date")
}

func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	e, err := s.events.Get(ctx, id)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, NotFound("Event not found")
	}
	return e, err
}

func (s *EventService) Create(ctx context.Context, caller *identity.Identity, req dto.CreateEventRequest) (*models.Event, error) {
	if err := s.policy.Authorize(ctx, caller, ActionAuthenticated, nil); err != nil {
		return nil, err
	}
	organizer := req.Organizer
	if organizer == "" {
		organizer = caller.DisplayName()
	}

	e := &models.Event{
		ID:                   uuid.NewString(),
		Title:                req.Title,
		Description:          req.Description,
		Date:                 req.Date,
		Time:                 req.Time,
		Location:             req.Location,
		Type:                 req.Type,
		Capacity:             req.Capacity,
		RegisteredCount:      0,
		Organizer:            organizer,
		IsRegistered:         false,
		RegistrationDeadline: req.RegistrationDeadline,
		Price:                req.Price,
		Agenda:               req.Agenda,
		Speakers:             req.Speakers,
		IsActive:             true,
		CreatedBy:            caller.ID,
		CreatedAt:            s.now().UTC(),
	}
	if err := s.events.Put(ctx, e.ID, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Register takes a seat for the caller. The seat is claimed inside the
// atomic update of the event so capacity is never exceeded; the
// registration record is written afterwards.
func (s *EventService) Register(ctx context.Context, caller *identity.Identity, eventID string) (*models.Registration, error) {
	if err := s.policy.Authorize(ctx, caller, ActionAuthenticated, nil); err != nil {
		return nil, err
	}

	_, err := s.events.Update(ctx, eventID, func(e *models.Event) error {
		if e.Full() {
			return Conflict("Event is full")
		}
		e.RegisteredCount++
		return nil
	})
	if errors.Is(err, kv.ErrNotFound) {
		return nil, NotFound("Event not found")
	}
	if err != nil {
		return nil, err
	}

	reg := &models.Registration{
		ID:           uuid.NewString(),
		EventID:      eventID,
		UserID:       caller.ID,
		RegisteredAt: s.now().UTC(),
	}
	if err := s.registrations.Put(ctx, reg.ID, reg); err != nil {
		log.Printf("register: seat taken on event %s but registration not stored: %v", eventID, err)
		return nil, err
	}
	return reg, nil
}
