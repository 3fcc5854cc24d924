package dto

type CreateProblemRequest struct {
	Title            string `json:"title" validate:"required,max=300"`
	Description      string `json:"description,omitempty"`
	Organization     string `json:"organization" validate:"required"`
	Department       string `json:"department,omitempty"`
	Category         string `json:"category" validate:"required"`
	Theme            string `json:"theme,omitempty"`
	PSNumber         string `json:"psNumber,omitempty"`
	Deadline         string `json:"deadline,omitempty"`
	Impact           string `json:"impact,omitempty"`
	ExpectedOutcomes string `json:"expectedOutcomes,omitempty"`
	Stakeholders     string `json:"stakeholders,omitempty"`
}

type IdeaData struct {
	IdeaTitle         string `json:"ideaTitle" validate:"required,max=300"`
	Description       string `json:"description" validate:"required"`
	TechnicalApproach string `json:"technicalApproach,omitempty"`
	ExpectedImpact    string `json:"expectedImpact,omitempty"`
	TeamMembers       string `json:"teamMembers,omitempty"`
	ContactEmail      string `json:"contactEmail,omitempty" validate:"omitempty,email"`
}

type SubmitIdeaRequest struct {
	ProblemID string   `json:"problemId" validate:"required"`
	IdeaData  IdeaData `json:"ideaData"`
}
