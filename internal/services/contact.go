package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumni-portal/dto"
	"alumni-portal/internal/models"
	"alumni-portal/internal/repository"
)

const ContactAck = "Contact form submitted successfully"

type ContactService struct {
	contacts *repository.Repository[models.Contact]
	now      func() time.Time
}

// Submit needs no caller; the form is public.
func (s *ContactService) Submit(ctx context.Context, req dto.ContactRequest) (string, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return "", Invalid("name, email and message are required")
	}
	c := &models.Contact{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Institution: req.Institution,
		Subject:     req.Subject,
		Category:    req.Category,
		Message:     req.Message,
		SubmittedAt: s.now().UTC(),
	}
	if err := s.contacts.Put(ctx, c.ID, c); err != nil {
		return "", err
	}
	return ContactAck, nil
}
