package models

import "time"

const (
	KindEvent        = "event"
	KindRegistration = "registration"
)

type Speaker struct {
	Name    string `json:"name"`
	Title   string `json:"title,omitempty"`
	Company string `json:"company,omitempty"`
}

type Event struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Date                 string    `json:"date"`
	Time                 string    `json:"time,omitempty"`
	Location             string    `json:"location"`
	Type                 string    `json:"type"` // networking | reunion | workshop | career | social | fundraising
	Capacity             int       `json:"capacity"`
	RegisteredCount      int       `json:"registeredCount"`
	Organizer            string    `json:"organizer"`
	IsRegistered         bool      `json:"isRegistered"`
	RegistrationDeadline string    `json:"registrationDeadline,omitempty"`
	Price                float64   `json:"price"`
	Agenda               []string  `json:"agenda,omitempty"`
	Speakers             []Speaker `json:"speakers,omitempty"`
	IsActive             bool      `json:"isActive"`
	CreatedBy            string    `json:"createdBy,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

// Full reports whether the event has a capacity and it is used up.
func (e Event) Full() bool {
	return e.Capacity > 0 && e.RegisteredCount >= e.Capacity
}

type Registration struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	UserID       string    `json:"userId"`
	RegisteredAt time.Time `json:"registeredAt"`
}
