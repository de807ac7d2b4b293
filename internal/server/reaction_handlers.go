package server

import (
	"confide/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ReactToPost handles POST /api/posts/:id/react
func (s *Server) ReactToPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Type string `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	reactions, err := s.reactionService.React(ctx, postID, req.Type)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"reactions": reactions})
}
