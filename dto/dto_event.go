package dto

import "alumni-portal/internal/models"

type CreateEventRequest struct {
	Title                string           `json:"title" validate:"required,max=300"`
	Description          string           `json:"description,omitempty"`
	Date                 string           `json:"date" validate:"required"`
	Time                 string           `json:"time,omitempty"`
	Location             string           `json:"location,omitempty"`
	Type                 string           `json:"type,omitempty" validate:"omitempty,oneof=networking reunion workshop career social fundraising"`
	Capacity             int              `json:"capacity" validate:"min=0"`
	Organizer            string           `json:"organizer,omitempty"`
	RegistrationDeadline string           `json:"registrationDeadline,omitempty"`
	Price                float64          `json:"price" validate:"min=0"`
	Agenda               []string         `json:"agenda,omitempty"`
	Speakers             []models.Speaker `json:"speakers,omitempty"`
}
