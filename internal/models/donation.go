package models

import "time"

const (
	KindCampaign = "campaign"
	KindDonation = "donation"
)

type Campaign struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Goal        float64   `json:"goal"`
	Raised      float64   `json:"raised"`
	DonorCount  int       `json:"donorCount"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	Deadline    string    `json:"deadline,omitempty"`
	Organizer   string    `json:"organizer"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Donation updates its campaign's Raised and DonorCount when created.
type Donation struct {
	ID            string    `json:"id"`
	CampaignID    string    `json:"campaignId"`
	CampaignTitle string    `json:"campaignTitle,omitempty"`
	Amount        float64   `json:"amount"`
	DonorID       string    `json:"donorId,omitempty"`
	DonorName     string    `json:"donorName"`
	Message       string    `json:"message,omitempty"`
	IsAnonymous   bool      `json:"isAnonymous"`
	Date          time.Time `json:"date"`
}
