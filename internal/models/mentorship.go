package models

import "time"

const (
	KindMentorshipRequest = "mentorship-request"
	KindMentorshipPair    = "mentorship-pair"
)

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestDeclined = "declined"

	PairActive    = "active"
	PairCompleted = "completed"
	PairPaused    = "paused"
)

type MentorshipRequest struct {
	ID         string    `json:"id"`
	MentorID   string    `json:"mentorId"`
	MenteeID   string    `json:"menteeId"`
	MentorName string    `json:"mentorName"`
	MenteeName string    `json:"menteeName"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	Expertise  string    `json:"expertise"`
	PairID     string    `json:"pairId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Involves reports whether userID is the mentor or the mentee.
func (r MentorshipRequest) Involves(userID string) bool {
	return userID != "" && (r.MentorID == userID || r.MenteeID == userID)
}

// MentorshipPair is created when a request is accepted.
type MentorshipPair struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"requestId,omitempty"`
	MentorID    string    `json:"mentorId"`
	MenteeID    string    `json:"menteeId"`
	MentorName  string    `json:"mentorName"`
	MenteeName  string    `json:"menteeName"`
	StartDate   time.Time `json:"startDate"`
	Status      string    `json:"status"`
	Goals       string    `json:"goals"`
	Meetings    int       `json:"meetings"`
	NextMeeting string    `json:"nextMeeting,omitempty"`
}

func (p MentorshipPair) Involves(userID string) bool {
	return userID != "" && (p.MentorID == userID || p.MenteeID == userID)
}
