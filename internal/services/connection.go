package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"alumni-portal/dto"
	"alumni-portal/internal/identity"
	"alumni-portal/internal/models"
	"alumni-portal/internal/repository"
	"alumni-portal/internal/utils"
)

var connectionSortKeys = utils.SortKeys[models.Connection]{
	"createdAt": func(a, b models.Connection) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

type ConnectionService struct {
	policy      *Policy
	connections *repository.Repository[models.Connection]
	now         func() time.Time
}

func (s *ConnectionService) Create(ctx context.Context, caller *identity.Identity, req dto.ConnectionRequest) (*models.Connection, error) {
	if err := s.policy.Authorize(ctx, caller, ActionAuthenticated, nil); err != nil {
		return nil, err
	}
	from := req.FromUserID
	if from == "" {
		from = caller.ID
	}
	if req.ToUserID == "" {
		return nil, Invalid("toUserId is required")
	}
	if from == req.ToUserID {
		return nil, Invalid("cannot connect a user to themselves")
	}

	conn := &models.Connection{
		ID:         uuid.NewString(),
		FromUserID: from,
		ToUserID:   req.ToUserID,
		Message:    req.Message,
		Status:     models.ConnectionStatusPending,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.connections.Put(ctx, conn.ID, conn); err != nil {
		return nil, err
	}
	return conn, nil
}

func (s *ConnectionService) ListForUser(ctx context.Context, userID string, q ListQuery) (dto.Page[models.Connection], error) {
	all, err := s.connections.List(ctx)
	if err != nil {
		return dto.Page[models.Connection]{}, err
	}
	matched := filter(all, func(c models.Connection) bool {
		return (c.FromUserID == userID || c.ToUserID == userID) && utils.MatchAny(q.Search, c.Message)
	})
	return page(matched, q, connectionSortKeys, "-createdAt")
}
