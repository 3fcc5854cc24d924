package models

import "time"

const (
	KindProblem    = "problem"
	KindSubmission = "submission"
)

type ProblemStatement struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description,omitempty"`
	Organization        string    `json:"organization"`
	Department          string    `json:"department,omitempty"`
	Category            string    `json:"category"`
	Theme               string    `json:"theme"`
	PSNumber            string    `json:"psNumber,omitempty"`
	Deadline            string    `json:"deadline"`
	Impact              string    `json:"impact,omitempty"`
	ExpectedOutcomes    string    `json:"expectedOutcomes,omitempty"`
	Stakeholders        string    `json:"stakeholders,omitempty"`
	SubmittedIdeasCount int       `json:"submittedIdeasCount"`
	CreatedAt           time.Time `json:"createdAt"`
	CreatedBy           string    `json:"createdBy,omitempty"`
}

const SubmissionStatusSubmitted = "submitted"

// Submission is one idea submitted against a problem statement. Creating one
// increments the parent's SubmittedIdeasCount.
type Submission struct {
	ID                string    `json:"id"`
	ProblemID         string    `json:"problemId"`
	UserID            string    `json:"userId"`
	IdeaTitle         string    `json:"ideaTitle"`
	Description       string    `json:"description"`
	TechnicalApproach string    `json:"technicalApproach,omitempty"`
	ExpectedImpact    string    `json:"expectedImpact,omitempty"`
	TeamMembers       string    `json:"teamMembers,omitempty"`
	ContactEmail      string    `json:"contactEmail,omitempty"`
	Status            string    `json:"status"`
	SubmittedAt       time.Time `json:"submittedAt"`
}
