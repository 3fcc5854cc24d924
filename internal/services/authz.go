package services

import (
	"context"
	"errors"

	"alumni-portal/internal/identity"
	"alumni-portal/internal/kv"
	"alumni-portal/internal/models"
	"alumni-portal/internal/repository"
)

type Action string

const (
	// ActionAuthenticated only needs a resolved caller.
	ActionAuthenticated           Action = "authenticated"
	ActionCreateProblem           Action = "problem:create"
	ActionListSubmissions         Action = "submission:list"
	ActionViewAnalytics           Action = "analytics:view"
	ActionCreateAnnouncement      Action = "announcement:create"
	ActionUpdateMentorshipRequest Action = "mentorship-request:update"
	// ActionAcceptMentorshipRequest is reserved for the mentor; the mentee
	// can only decline.
	ActionAcceptMentorshipRequest Action = "mentorship-request:accept"
)

// Policy is the one place that decides what a caller may do. Roles come from
// the caller's user:<id> record, never from the token.
type Policy struct {
	users *repository.Repository[models.User]
}

func NewPolicy(users *repository.Repository[models.User]) *Policy {
	return &Policy{users: users}
}

// RoleOf returns the stored role of userID, or "" when there is no record.
func (p *Policy) RoleOf(ctx context.Context, userID string) (models.Role, error) {
	u, err := p.users.Get(ctx, userID)
	if errors.Is(err, kv.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

// Authorize returns nil when caller may perform action on resource,
// identity.ErrUnauthorized for anonymous callers and ErrForbidden otherwise.
func (p *Policy) Authorize(ctx context.Context, caller *identity.Identity, action Action, resource any) error {
	if caller == nil || caller.ID == "" {
		return identity.ErrUnauthorized
	}
	if action == ActionAuthenticated {
		return nil
	}

	role, err := p.RoleOf(ctx, caller.ID)
	if err != nil {
		return err
	}

	allowed := false
	switch action {
	case ActionCreateProblem, ActionViewAnalytics:
		allowed = role == models.RoleAdmin
	case ActionCreateAnnouncement:
		allowed = role == models.RoleAdmin || role == models.RoleSPOC
	case ActionListSubmissions:
		if ps, ok := resource.(*models.ProblemStatement); ok && ps.CreatedBy == caller.ID {
			allowed = true
		} else {
			allowed = role == models.RoleAdmin
		}
	case ActionUpdateMentorshipRequest:
		if req, ok := resource.(*models.MentorshipRequest); ok && req.Involves(caller.ID) {
			allowed = true
		} else {
			allowed = role == models.RoleAdmin
		}
	case ActionAcceptMentorshipRequest:
		if req, ok := resource.(*models.MentorshipRequest); ok && req.MentorID == caller.ID {
			allowed = true
		} else {
			allowed = role == models.RoleAdmin
		}
	}

	if !allowed {
		return Forbidden("Access denied")
	}
	return nil
}
