package repository

import (
	"context"

	"confide/internal/models"

	"gorm.io/gorm"
)

// ReplyRepository defines the interface for reply data operations. Append-only.
type ReplyRepository interface {
	Create(ctx context.Context, reply *models.Reply) error
	ListByPost(ctx context.Context, postID uint) ([]*models.Reply, error)
}

type replyRepository struct {
	db *gorm.DB
}

// NewReplyRepository creates a new ReplyRepository
func NewReplyRepository(db *gorm.DB) ReplyRepository {
	return &replyRepository{db: db}
}

func (r *replyRepository) Create(ctx context.Context, reply *models.Reply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *replyRepository) ListByPost(ctx context.Context, postID uint) ([]*models.Reply, error) {
	replies := []*models.Reply{}
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&replies).Error
	return replies, err
}
