// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"confide/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sort modes accepted by PostRepository.List.
const (
	SortTop = "top"
	SortNew = "new"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, sort string) ([]*models.Post, error)
	Update(ctx context.Context, id uint, text, mood string, image *string) error
	Delete(ctx context.Context, id uint) error
	IncrementLikes(ctx context.Context, id uint) (int, error)
	IncrementReposts(ctx context.Context, id uint) (int, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostCounts(r.db.WithContext(ctx)).First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, sort string) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.applySort(r.applyPostCounts(r.db.WithContext(ctx)), sort).
		Find(&posts).Error
	return posts, err
}

const reactionCountSubquery = "(SELECT COUNT(*) FROM reactions WHERE reactions.post_id = posts.id)"

// applyPostCounts adds subqueries to fetch reaction and reply totals in a
// single query.
func (r *postRepository) applyPostCounts(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Post{}).Select("posts.*, " +
		reactionCountSubquery + " as reaction_count, " +
		"(SELECT COUNT(*) FROM replies WHERE replies.post_id = posts.id) as reply_count")
}

// applySort appends the ORDER BY clause for the requested sort mode.
// The score expression repeats the reaction subquery instead of referencing
// the reaction_count alias: postgres resolves names inside an ORDER BY
// expression against input columns only, so the alias would be undefined
// there. The id tie-break keeps the ordering deterministic.
func (r *postRepository) applySort(db *gorm.DB, sort string) *gorm.DB {
	switch sort {
	case SortTop:
		return db.Order("(" + reactionCountSubquery + " + reposts + likes) DESC, id DESC")
	default: // "new" and anything unrecognized
		return db.Order("created_at DESC, id DESC")
	}
}

func (r *postRepository) Update(ctx context.Context, id uint, text, mood string, image *string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"text":  text,
			"mood":  mood,
			"image": image,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the post and all of its reactions, replies and reports in a
// single transaction, so a crash cannot leave orphaned child rows.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Reply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Report{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *postRepository) IncrementLikes(ctx context.Context, id uint) (int, error) {
	return r.incrementCounter(ctx, id, "likes")
}

func (r *postRepository) IncrementReposts(ctx context.Context, id uint) (int, error) {
	return r.incrementCounter(ctx, id, "reposts")
}

// incrementCounter bumps the named counter and returns the post-increment
// value. The update and the read-back are one statement via RETURNING, so
// concurrent increments each observe their own resulting value.
func (r *postRepository) incrementCounter(ctx context.Context, id uint, column string) (int, error) {
	var post models.Post
	res := r.db.WithContext(ctx).
		Model(&post).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: column}}}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	if column == "reposts" {
		return post.Reposts, nil
	}
	return post.Likes, nil
}
