package dto

type CreateMentorshipRequest struct {
	MentorID  string `json:"mentorId" validate:"required"`
	MenteeID  string `json:"menteeId,omitempty"`
	Message   string `json:"message,omitempty" validate:"max=2000"`
	Expertise string `json:"expertise,omitempty"`
}

type UpdateMentorshipRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted declined"`
}
