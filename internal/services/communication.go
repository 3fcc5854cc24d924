package services

import (
	"cmp"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"alumni-portal/dto"
	"alumni-portal/internal/identity"
	"alumni-portal/internal/kv"
	"alumni-portal/internal/models"
	"alumni-portal/internal/repository"
	"alumni-portal/internal/utils"
)

type AnnouncementFilter struct {
	ListQuery
	Category string
}

type ForumFilter struct {
	ListQuery
	Category string
	Tag      string
}

var (
	announcementSortKeys = utils.SortKeys[models.Announcement]{
		"createdAt": func(a, b models.Announcement) int { return a.CreatedAt.Compare(b.CreatedAt) },
		"title":     func(a, b models.Announcement) int { return utils.CompareFold(a.Title, b.Title) },
	}
	forumSortKeys = utils.SortKeys[models.ForumPost]{
		"createdAt":    func(a, b models.ForumPost) int { return a.CreatedAt.Compare(b.CreatedAt) },
		"lastActivity": func(a, b models.ForumPost) int { return a.LastActivity.Compare(b.LastActivity) },
		"likes":        func(a, b models.ForumPost) int { return cmp.Compare(a.Likes, b.Likes) },
		"replies":      func(a, b models.ForumPost) int { return cmp.Compare(a.Replies, b.Replies) },
		"title":        func(a, b models.ForumPost) int { return utils.CompareFold(a.Title, b.Title) },
	}
)

type CommunicationService struct {
	policy        *Policy
	announcements *repository.Repository[models.Announcement]
	posts         *repository.Repository[models.ForumPost]
	now           func() time.Time
}

// ListAnnouncements puts pinned announcements first, newest first within
// each group, unless the caller asks for another order.
func (s *CommunicationService) ListAnnouncements(ctx context.Context, f AnnouncementFilter) (dto.Page[models.Announcement], error) {
	all, err := s.announcements.List(ctx)
	if err != nil {
		return dto.Page[models.Announcement]{}, err
	}
	matched := filter(all, func(a models.Announcement) bool {
		return utils.MatchExact(f.Category, a.Category) && utils.MatchAny(f.Search, a.Title, a.Content, a.Author)
	})
	if f.Sort == "" {
		pinnedFirst := utils.SortKeys[models.Announcement]{
			"pinned": func(a, b models.Announcement) int {
				if a.IsPinned != b.IsPinned {
					if a.IsPinned {
						return -1
					}
					return 1
				}
				return b.CreatedAt.Compare(a.CreatedAt)
			},
		}
		return page(matched, f.ListQuery, pinnedFirst, "pinned")
	}
	return page(matched, f.ListQuery, announcementSortKeys, "")
}

func (s *CommunicationService) CreateAnnouncement(ctx context.Context, caller *identity.Identity, req dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if err := s.policy.Authorize(ctx, caller, ActionCreateAnnouncement, nil); err != nil {
		return nil, err
	}
	role, err := s.policy.RoleOf(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	author := req.Author
	if author == "" {
		author = caller.DisplayName()
	}

	a := &models.Announcement{
		ID:         uuid.NewString(),
		Title:      req.Title,
		Content:    req.Content,
		Author:     author,
		AuthorID:   caller.ID,
		AuthorRole: role,
		Category:   req.Category,
		IsPinned:   false,
		ReadBy:     []string{},
		CreatedAt:  s.now().UTC(),
	}
	if err := s.announcements.Put(ctx, a.ID, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *CommunicationService) MarkAnnouncementRead(ctx context.Context, caller *identity.Identity, id string) error {
	if err := s.policy.Authorize(ctx, caller, ActionAuthenticated, nil); err != nil {
		return err
	}
	_, err := s.announcements.Update(ctx, id, func(a *models.Announcement) error {
		a.MarkRead(caller.ID)
		return nil
	})
	if errors.Is(err, kv.ErrNotFound) {
		return NotFound("Announcement not found")
	}
	return err
}

func (s *CommunicationService) ListForumPosts(ctx context.Context, f ForumFilter) (dto.Page[models.ForumPost], error) {
	all, err := s.posts.List(ctx)
	if err != nil {
		return dto.Page[models.ForumPost]{}, err
	}
	matched := filter(all, func(p models.ForumPost) bool {
		if f.Tag != "" && !hasTag(p.Tags, f.Tag) {
			return false
		}
		return utils.MatchExact(f.Category, p.Category) && utils.MatchAny(f.Search, p.Title, p.Content)
	})
	return page(matched, f.ListQuery, forumSortKeys, "-lastActivity")
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if utils.CompareFold(t, tag) == 0 {
			return true
		}
	}
	return false
}

func (s *CommunicationService) CreateForumPost(ctx context.Context, caller *identity.Identity, req dto.CreateForumPostRequest) (*models.ForumPost, error) {
	if err := s.policy.Authorize(ctx, caller, ActionAuthenticated, nil); err != nil {
		return nil, err
	}
	now := s.now().UTC()

	p := &models.ForumPost{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Content:      req.Content,
		Author:       caller.DisplayName(),
		AuthorID:     caller.ID,
		Category:     req.Category,
		Tags:         nonNil(req.Tags),
		Replies:      0,
		Likes:        0,
		IsLiked:      false,
		CreatedAt:    now,
		LastActivity: now,
	}
	if err := s.posts.Put(ctx, p.ID, p); err != nil {
		return nil, err
	}
	return p, nil
}

// LikeForumPost adds one like per call; liking twice counts twice.
func (s *CommunicationService) LikeForumPost(ctx context.Context, caller *identity.Identity, id string) (int, error) {
	if err := s.policy.Authorize(ctx, caller, ActionAuthenticated, nil); err != nil {
		return 0, err
	}
	p, err := s.posts.Update(ctx, id, func(p *models.ForumPost) error {
		p.Likes++
		p.IsLiked = true
		return nil
	})
	if errors.Is(err, kv.ErrNotFound) {
		return 0, NotFound("Post not found")
	}
	if err != nil {
		return 0, err
	}
	return p.Likes, nil
}
