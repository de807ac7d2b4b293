package server

import (
	"confide/internal/models"
	"confide/internal/service"

	"github.com/gofiber/fiber/v2"
)

// postBody is the request payload shared by create and update.
type postBody struct {
	Text  string  `json:"text"`
	Mood  string  `json:"mood"`
	Image *string `json:"image"`
}

// GetPosts handles GET /api/posts?sort=top
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()
	sort := c.Query("sort")

	posts, err := s.postService.ListPosts(ctx, sort)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req postBody
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		Text:  req.Text,
		Mood:  req.Mood,
		Image: req.Image,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postBody
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(ctx, service.UpdatePostInput{
		PostID: postID,
		Text:   req.Text,
		Mood:   req.Mood,
		Image:  req.Image,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(ctx, postID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true})
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	likes, err := s.postService.LikePost(ctx, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"likes": likes})
}

// RepostPost handles POST /api/posts/:id/repost
func (s *Server) RepostPost(c *fiber.Ctx) error {
	ctx := c.UserContext()
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	reposts, err := s.postService.RepostPost(ctx, postID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"reposts": reposts})
}
