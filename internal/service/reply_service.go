package service

import (
	"context"
	"strings"

	"confide/internal/models"
	"confide/internal/observability"
	"confide/internal/repository"
)

// ReplyService records and lists free-text replies on posts.
type ReplyService struct {
	replyRepo repository.ReplyRepository
}

// NewReplyService creates a new ReplyService.
func NewReplyService(replyRepo repository.ReplyRepository) *ReplyService {
	return &ReplyService{replyRepo: replyRepo}
}

// ListReplies returns the post's replies, oldest first.
func (s *ReplyService) ListReplies(ctx context.Context, postID uint) ([]*models.Reply, error) {
	return s.replyRepo.ListByPost(ctx, postID)
}

// AddReply validates and stores a reply. Reply text has no length cap, only
// the non-empty rule. Inserts against a missing post id are accepted.
func (s *ReplyService) AddReply(ctx context.Context, postID uint, text string) (*models.Reply, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, models.NewValidationError("Text is required")
	}

	reply := &models.Reply{
		PostID: postID,
		Text:   trimmed,
	}
	if err := s.replyRepo.Create(ctx, reply); err != nil {
		return nil, err
	}
	observability.RepliesCreated.Inc()
	return reply, nil
}
