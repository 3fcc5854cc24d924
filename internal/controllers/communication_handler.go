package controllers

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/dto"
	"alumni-portal/internal/middleware"
	"alumni-portal/internal/services"
)

type CommunicationHandler struct {
	comm *services.CommunicationService
}

func NewCommunicationHandler(s *services.CommunicationService) *CommunicationHandler {
	return &CommunicationHandler{comm: s}
}

// Announcements godoc
// @Summary List announcements
// @Description Pinned first, then newest, unless sort is given.
// @Tags communication
// @Produce json
// @Param category query string false "Category"
// @Success 200 {object} dto.Page[models.Announcement]
// @Router /announcements [get]
func (h *CommunicationHandler) Announcements(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	pg, err := h.comm.ListAnnouncements(ctx, services.AnnouncementFilter{
		ListQuery: listQuery(c, 0),
		Category:  c.Query("category"),
	})
	if err != nil {
		return err
	}
	return c.JSON(pg)
}

// CreateAnnouncement godoc
// @Summary Post an announcement
// @Description Admin or SPOC only.
// @Tags communication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} models.Announcement
// @Failure 403 {object} dto.ErrorResponse
// @Router /announcements [post]
func (h *CommunicationHandler) CreateAnnouncement(c *fiber.Ctx) error {
	var body dto.CreateAnnouncementRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.comm.CreateAnnouncement(ctx, middleware.IdentityFrom(c), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// MarkRead godoc
// @Summary Mark an announcement as read by the caller
// @Tags communication
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /announcements/{id}/read [post]
func (h *CommunicationHandler) MarkRead(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.comm.MarkAnnouncementRead(ctx, middleware.IdentityFrom(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Announcement marked as read"})
}

// ForumPosts godoc
// @Summary List forum posts
// @Tags communication
// @Produce json
// @Param category query string false "Category"
// @Param tag query string false "Tag"
// @Param search query string false "Title or content"
// @Success 200 {object} dto.Page[models.ForumPost]
// @Router /forum-posts [get]
func (h *CommunicationHandler) ForumPosts(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	pg, err := h.comm.ListForumPosts(ctx, services.ForumFilter{
		ListQuery: listQuery(c, 0),
		Category:  c.Query("category"),
		Tag:       c.Query("tag"),
	})
	if err != nil {
		return err
	}
	return c.JSON(pg)
}

// CreateForumPost godoc
// @Summary Start a forum thread
// @Tags communication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateForumPostRequest true "Post"
// @Success 201 {object} models.ForumPost
// @Router /forum-posts [post]
func (h *CommunicationHandler) CreateForumPost(c *fiber.Ctx) error {
	var body dto.CreateForumPostRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	p, err := h.comm.CreateForumPost(ctx, middleware.IdentityFrom(c), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// LikeForumPost godoc
// @Summary Like a forum post
// @Description Each call adds one like.
// @Tags communication
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /forum-posts/{id}/like [post]
func (h *CommunicationHandler) LikeForumPost(c *fiber.Ctx) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	likes, err := h.comm.LikeForumPost(ctx, middleware.IdentityFrom(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.LikeResponse{Message: "Post liked", Likes: likes})
}
