package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"confide/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestPostRepository_CreateAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &models.Post{Text: "first confession", Mood: models.MoodHappy}
	require.NoError(t, repo.Create(ctx, post))
	assert.NotZero(t, post.ID)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "first confession", got.Text)
	assert.Equal(t, models.MoodHappy, got.Mood)
	assert.Nil(t, got.Image)
	assert.Equal(t, 0, got.Likes)
	assert.Equal(t, 0, got.Reposts)
	assert.Equal(t, 0, got.ReactionCount)
	assert.Equal(t, 0, got.ReplyCount)
}

func TestPostRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPostRepository_List_CountsAndDefaultOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	older := mustCreatePost(t, db, "older", time.Now().Add(-2*time.Hour))
	newer := mustCreatePost(t, db, "newer", time.Now().Add(-1*time.Hour))

	require.NoError(t, db.Create(&models.Reaction{PostID: older.ID, Type: models.ReactionLove}).Error)
	require.NoError(t, db.Create(&models.Reaction{PostID: older.ID, Type: models.ReactionFire}).Error)
	require.NoError(t, db.Create(&models.Reply{PostID: newer.ID, Text: "same"}).Error)

	posts, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, posts, 2)

	// newest first
	assert.Equal(t, newer.ID, posts[0].ID)
	assert.Equal(t, older.ID, posts[1].ID)

	assert.Equal(t, 1, posts[0].ReplyCount)
	assert.Equal(t, 0, posts[0].ReactionCount)
	assert.Equal(t, 2, posts[1].ReactionCount)
	assert.Equal(t, 0, posts[1].ReplyCount)
}

func TestPostRepository_List_TopOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	// quiet is newest but has no engagement; loud is older with the
	// highest reaction+likes+reposts total.
	loud := mustCreatePost(t, db, "loud", time.Now().Add(-3*time.Hour))
	middle := mustCreatePost(t, db, "middle", time.Now().Add(-2*time.Hour))
	quiet := mustCreatePost(t, db, "quiet", time.Now().Add(-1*time.Hour))

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Reaction{PostID: loud.ID, Type: models.ReactionFire}).Error)
	}
	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", loud.ID).
		UpdateColumn("likes", 2).Error)
	require.NoError(t, db.Model(&models.Post{}).Where("id = ?", middle.ID).
		UpdateColumn("reposts", 1).Error)

	posts, err := repo.List(ctx, SortTop)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	assert.Equal(t, loud.ID, posts[0].ID)
	assert.Equal(t, middle.ID, posts[1].ID)
	assert.Equal(t, quiet.ID, posts[2].ID)
}

func TestPostRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := mustCreatePost(t, db, "before", time.Now())
	require.NoError(t, db.Model(post).UpdateColumn("likes", 7).Error)

	img := "data:image/png;base64,xyz"
	require.NoError(t, repo.Update(ctx, post.ID, "after", models.MoodSad, &img))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Text)
	assert.Equal(t, models.MoodSad, got.Mood)
	require.NotNil(t, got.Image)
	assert.Equal(t, img, *got.Image)
	// counters and timestamp are untouched
	assert.Equal(t, 7, got.Likes)
	assert.WithinDuration(t, post.CreatedAt, got.CreatedAt, time.Second)
}

func TestPostRepository_Update_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	err := repo.Update(context.Background(), 99, "text", models.MoodNone, nil)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPostRepository_Delete_Cascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := mustCreatePost(t, db, "doomed", time.Now())
	keeper := mustCreatePost(t, db, "keeper", time.Now())

	require.NoError(t, db.Create(&models.Reaction{PostID: post.ID, Type: models.ReactionLove}).Error)
	require.NoError(t, db.Create(&models.Reply{PostID: post.ID, Text: "bye"}).Error)
	require.NoError(t, db.Create(&models.Report{PostID: post.ID, Reason: models.ReasonSpam}).Error)
	require.NoError(t, db.Create(&models.Reply{PostID: keeper.ID, Text: "stays"}).Error)

	require.NoError(t, repo.Delete(ctx, post.ID))

	var count int64
	db.Model(&models.Post{}).Where("id = ?", post.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Reaction{}).Where("post_id = ?", post.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Reply{}).Where("post_id = ?", post.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Report{}).Where("post_id = ?", post.ID).Count(&count)
	assert.Zero(t, count)

	// siblings untouched
	db.Model(&models.Reply{}).Where("post_id = ?", keeper.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestPostRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	err := repo.Delete(context.Background(), 1234)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestPostRepository_IncrementCounters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := mustCreatePost(t, db, "counted", time.Now())

	likes, err := repo.IncrementLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, likes)

	likes, err = repo.IncrementLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, likes)

	reposts, err := repo.IncrementReposts(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reposts)

	_, err = repo.IncrementLikes(ctx, 777)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
