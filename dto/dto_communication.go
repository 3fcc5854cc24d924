package dto

type CreateAnnouncementRequest struct {
	Title    string `json:"title" validate:"required,max=300"`
	Content  string `json:"content" validate:"required"`
	Author   string `json:"author,omitempty"`
	Category string `json:"category,omitempty"`
}

type CreateForumPostRequest struct {
	Title    string   `json:"title" validate:"required,max=300"`
	Content  string   `json:"content" validate:"required"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty" validate:"max=10"`
}

type LikeResponse struct {
	Message string `json:"message"`
	Likes   int    `json:"likes"`
}

type ConnectionRequest struct {
	FromUserID string `json:"fromUserId,omitempty"`
	ToUserID   string `json:"toUserId" validate:"required"`
	Message    string `json:"message,omitempty" validate:"max=1000"`
}

type ContactRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone,omitempty"`
	Institution string `json:"institution,omitempty"`
	Subject     string `json:"subject,omitempty"`
	Category    string `json:"category,omitempty"`
	Message     string `json:"message" validate:"required,max=5000"`
}
