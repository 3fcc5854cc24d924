package services

import (
	"context"
	"errors"
	"time"

	"alumni-portal/dto"
	"alumni-portal/internal/identity"
	"alumni-portal/internal/kv"
	"alumni-portal/internal/models"
	"alumni-portal/internal/repository"
)

type UserService struct {
	idp              identity.Provider
	users            *repository.Repository[models.User]
	allowAdminSignup bool
	now              func() time.Time
}

// Signup registers the identity and stores the portal profile under
// user:<id>. The role defaults to Student; Admin is only granted when admin
// signup is enabled.
func (s *UserService) Signup(ctx context.Context, req dto.SignupRequest) (identity.Identity, error) {
	role := models.RoleStudent
	if req.UserData.Role != "" {
		role = models.Role(req.UserData.Role)
	}
	if !role.Valid() {
		return identity.Identity{}, Invalid("unknown role: " + req.UserData.Role)
	}
	if role == models.RoleAdmin && !s.allowAdminSignup {
		return identity.Identity{}, Forbidden("Admin accounts cannot be created through signup")
	}

	metadata := map[string]any{
		"name": req.UserData.Name,
		"role": string(role),
	}
	if req.UserData.Institution != "" {
		metadata["institution"] = req.UserData.Institution
	}
	if req.UserData.Department != "" {
		metadata["department"] = req.UserData.Department
	}

	id, err := s.idp.CreateUser(ctx, req.Email, req.Password, metadata)
	if err != nil {
		return identity.Identity{}, err
	}

	u := &models.User{
		ID:          id.ID,
		Email:       id.Email,
		Role:        role,
		Name:        req.UserData.Name,
		Institution: req.UserData.Institution,
		Department:  req.UserData.Department,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.users.Put(ctx, u.ID, u); err != nil {
		return identity.Identity{}, err
	}
	return id, nil
}

func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	token, id, err := s.idp.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	profile, err := s.Profile(ctx, &id)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	return dto.LoginResponse{AccessToken: token, User: *profile}, nil
}

// Profile returns the stored user, or an Alumni profile built from the
// identity when none was stored.
func (s *UserService) Profile(ctx context.Context, caller *identity.Identity) (*models.User, error) {
	if caller == nil {
		return nil, identity.ErrUnauthorized
	}
	u, err := s.users.Get(ctx, caller.ID)
	if errors.Is(err, kv.ErrNotFound) {
		return &models.User{
			ID:        caller.ID,
			Email:     caller.Email,
			Role:      models.RoleAlumni,
			Name:      caller.DisplayName(),
			CreatedAt: caller.CreatedAt,
		}, nil
	}
	return u, err
}
