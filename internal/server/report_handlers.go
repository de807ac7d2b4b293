package server

import (
	"confide/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ReportPost handles POST /api/posts/:id/report
func (s *Server) ReportPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	report, err := s.reportService.FileReport(ctx, postID, req.Reason)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(report)
}
