package models

import (
	"slices"
	"time"
)

const (
	KindAnnouncement = "announcement"
	KindForumPost    = "forum-post"
	KindConnection   = "connection"
	KindContact      = "contact"
)

type Announcement struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	AuthorID   string    `json:"authorId,omitempty"`
	AuthorRole Role      `json:"authorRole"`
	Category   string    `json:"category"`
	IsPinned   bool      `json:"isPinned"`
	ReadBy     []string  `json:"readBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MarkRead adds userID to ReadBy once and reports whether it was added.
func (a *Announcement) MarkRead(userID string) bool {
	if slices.Contains(a.ReadBy, userID) {
		return false
	}
	a.ReadBy = append(a.ReadBy, userID)
	return true
}

type ForumPost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	AuthorID     string    `json:"authorId"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	Replies      int       `json:"replies"`
	Likes        int       `json:"likes"`
	IsLiked      bool      `json:"isLiked"`
	CreatedAt    time.Time `json:"createdAt"`
	LastActivity time.Time `json:"lastActivity"`
}

const ConnectionStatusPending = "pending"

type Connection struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"fromUserId"`
	ToUserID   string    `json:"toUserId"`
	Message    string    `json:"message,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Institution string    `json:"institution,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Category    string    `json:"category,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}
