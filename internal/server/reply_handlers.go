package server

import (
	"confide/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetReplies handles GET /api/posts/:id/replies
func (s *Server) GetReplies(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	replies, err := s.replyService.ListReplies(ctx, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(replies)
}

// CreateReply handles POST /api/posts/:id/reply
func (s *Server) CreateReply(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	reply, err := s.replyService.AddReply(ctx, postID, req.Text)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(reply)
}
