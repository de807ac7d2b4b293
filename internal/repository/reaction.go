package repository

import (
	"context"

	"confide/internal/models"

	"gorm.io/gorm"
)

// ReactionRepository defines the interface for reaction data operations.
// Reactions are append-only; there is no update or single delete.
type ReactionRepository interface {
	Create(ctx context.Context, reaction *models.Reaction) error
	BreakdownForPost(ctx context.Context, postID uint) (map[string]int, error)
	BreakdownForPosts(ctx context.Context, postIDs []uint) (map[uint]map[string]int, error)
}

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a new ReactionRepository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) Create(ctx context.Context, reaction *models.Reaction) error {
	return r.db.WithContext(ctx).Create(reaction).Error
}

type breakdownRow struct {
	PostID uint
	Type   string
	Count  int
}

func (r *reactionRepository) BreakdownForPost(ctx context.Context, postID uint) (map[string]int, error) {
	var rows []breakdownRow
	err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Select("type, COUNT(*) as count").
		Where("post_id = ?", postID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	breakdown := make(map[string]int, len(rows))
	for _, row := range rows {
		breakdown[row.Type] = row.Count
	}
	return breakdown, nil
}

// BreakdownForPosts fetches the type-by-type reaction counts for all given
// posts in one grouped query. Callers assembling a feed must use this instead
// of per-post lookups.
func (r *reactionRepository) BreakdownForPosts(ctx context.Context, postIDs []uint) (map[uint]map[string]int, error) {
	breakdowns := make(map[uint]map[string]int, len(postIDs))
	if len(postIDs) == 0 {
		return breakdowns, nil
	}

	var rows []breakdownRow
	err := r.db.WithContext(ctx).
		Model(&models.Reaction{}).
		Select("post_id, type, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id, type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if breakdowns[row.PostID] == nil {
			breakdowns[row.PostID] = make(map[string]int)
		}
		breakdowns[row.PostID][row.Type] = row.Count
	}
	return breakdowns, nil
}
