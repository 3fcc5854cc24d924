package dto

import "alumni-portal/internal/models"

type CreateAlumniRequest struct {
	Name                     string              `json:"name" validate:"required,max=200"`
	Email                    string              `json:"email,omitempty" validate:"omitempty,email"`
	GradYear                 int                 `json:"gradYear,omitempty" validate:"omitempty,min=1900,max=2100"`
	Degree                   string              `json:"degree,omitempty"`
	Company                  string              `json:"company,omitempty"`
	Position                 string              `json:"position,omitempty"`
	Location                 string              `json:"location,omitempty"`
	Industry                 string              `json:"industry,omitempty"`
	Skills                   []string            `json:"skills,omitempty"`
	Bio                      string              `json:"bio,omitempty"`
	IsAvailableForMentorship bool                `json:"isAvailableForMentorship"`
	Experience               []models.Experience `json:"experience,omitempty"`
	Achievements             []string            `json:"achievements,omitempty"`
	Interests                []string            `json:"interests,omitempty"`
}
