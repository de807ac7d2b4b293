// Package service contains the application's business logic.
package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"confide/internal/models"
	"confide/internal/observability"
	"confide/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// PostService owns validation and assembly for confession posts.
type PostService struct {
	postRepo     repository.PostRepository
	reactionRepo repository.ReactionRepository
}

// CreatePostInput is the payload for creating a post.
type CreatePostInput struct {
	Text  string
	Mood  string
	Image *string
}

// UpdatePostInput is the payload for editing a post's text, mood and image.
type UpdatePostInput struct {
	PostID uint
	Text   string
	Mood   string
	Image  *string
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository, reactionRepo repository.ReactionRepository) *PostService {
	return &PostService{
		postRepo:     postRepo,
		reactionRepo: reactionRepo,
	}
}

// validatePostText trims text and enforces the non-empty and length rules.
func validatePostText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", models.NewValidationError("Text is required")
	}
	if utf8.RuneCountInString(trimmed) > models.MaxPostTextLen {
		return "", models.NewValidationError("Text too long (max 280 characters)")
	}
	return trimmed, nil
}

// ListPosts returns the feed ordered by the requested sort mode, each post
// carrying its totals and the per-type reaction breakdown. The breakdown is
// fetched in one batched query for all listed posts, never per post.
func (s *PostService) ListPosts(ctx context.Context, sort string) ([]*models.Post, error) {
	span, ctx := observability.NewSpan(ctx, "PostService.ListPosts")
	defer span.End()
	span.AddAttributes(attribute.String("feed.sort", sort))

	posts, err := s.postRepo.List(ctx, sort)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	breakdowns, err := s.reactionRepo.BreakdownForPosts(ctx, postIDs)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	for _, p := range posts {
		if b := breakdowns[p.ID]; b != nil {
			p.Reactions = b
		} else {
			p.Reactions = map[string]int{}
		}
	}
	return posts, nil
}

// CreatePost validates and stores a new confession, returning it with zeroed
// counters and an empty reactions map.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	text, err := validatePostText(in.Text)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:  text,
		Mood:  models.NormalizeMood(in.Mood),
		Image: in.Image,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	observability.PostsCreated.Inc()

	created, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	created.Reactions = map[string]int{}
	return created, nil
}

// UpdatePost overwrites text, mood and image of an existing post. Counters and
// the creation timestamp are left untouched.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	text, err := validatePostText(in.Text)
	if err != nil {
		return nil, err
	}

	err = s.postRepo.Update(ctx, in.PostID, text, models.NormalizeMood(in.Mood), in.Image)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}

	updated, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.reactionRepo.BreakdownForPost(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	updated.Reactions = breakdown
	return updated, nil
}

// DeletePost removes the post and all of its reactions, replies and reports.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	span, ctx := observability.NewSpan(ctx, "PostService.DeletePost")
	defer span.End()

	if err := s.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", id)
		}
		span.SetError(err)
		return err
	}
	observability.PostsDeleted.Inc()
	return nil
}

// LikePost increments the like counter and returns the new value.
func (s *PostService) LikePost(ctx context.Context, id uint) (int, error) {
	likes, err := s.postRepo.IncrementLikes(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.NewNotFoundError("Post", id)
		}
		return 0, err
	}
	return likes, nil
}

// RepostPost increments the repost counter and returns the new value.
func (s *PostService) RepostPost(ctx context.Context, id uint) (int, error) {
	reposts, err := s.postRepo.IncrementReposts(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.NewNotFoundError("Post", id)
		}
		return 0, err
	}
	return reposts, nil
}
