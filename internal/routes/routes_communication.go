package routes

import (
	"github.com/gofiber/fiber/v2"

	"alumni-portal/internal/controllers"
)

func SetupRoutesCommunication(api fiber.Router, h *controllers.CommunicationHandler, auth fiber.Handler) {
	api.Get("/announcements", h.Announcements)
	api.Post("/announcements", auth, h.CreateAnnouncement)
	api.Post("/announcements/:id/read", auth, h.MarkRead)

	api.Get("/forum-posts", h.ForumPosts)
	api.Post("/forum-posts", auth, h.CreateForumPost)
	api.Post("/forum-posts/:id/like", auth, h.LikeForumPost)
}
