package service

import (
	"context"

	"confide/internal/models"
	"confide/internal/observability"
	"confide/internal/repository"
)

// ReactionService records typed reactions on posts.
type ReactionService struct {
	reactionRepo repository.ReactionRepository
}

// NewReactionService creates a new ReactionService.
func NewReactionService(reactionRepo repository.ReactionRepository) *ReactionService {
	return &ReactionService{reactionRepo: reactionRepo}
}

// React validates the reaction type, records the reaction and returns the
// post's full per-type breakdown after insertion. The store does not enforce
// that the post exists; inserts against a missing id are accepted.
func (s *ReactionService) React(ctx context.Context, postID uint, reactionType string) (map[string]int, error) {
	if !models.IsReactionType(reactionType) {
		return nil, models.NewValidationError("Invalid reaction type")
	}

	reaction := &models.Reaction{
		PostID: postID,
		Type:   reactionType,
	}
	if err := s.reactionRepo.Create(ctx, reaction); err != nil {
		return nil, err
	}
	observability.ReactionsRecorded.WithLabelValues(reactionType).Inc()

	return s.reactionRepo.BreakdownForPost(ctx, postID)
}
