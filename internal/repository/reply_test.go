package repository

import (
	"context"
	"testing"
	"time"

	"confide/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyRepository_ListByPost_Order(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReplyRepository(db)
	ctx := context.Background()

	post := mustCreatePost(t, db, "parent", time.Now())
	other := mustCreatePost(t, db, "other", time.Now())

	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &models.Reply{
			PostID:    post.ID,
			Text:      text,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.Reply{PostID: other.ID, Text: "elsewhere"}))

	replies, err := repo.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, replies, 3)
	assert.Equal(t, "first", replies[0].Text)
	assert.Equal(t, "second", replies[1].Text)
	assert.Equal(t, "third", replies[2].Text)
}

func TestReplyRepository_ListByPost_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReplyRepository(db)

	replies, err := repo.ListByPost(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, replies)
	assert.Empty(t, replies)
}

// Replies and reports may reference a post id that no longer exists; the
// store accepts them rather than enforcing referential integrity.
func TestChildRows_AcceptMissingPost(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, NewReplyRepository(db).Create(ctx, &models.Reply{PostID: 999, Text: "ghost"}))
	require.NoError(t, NewReactionRepository(db).Create(ctx, &models.Reaction{PostID: 999, Type: models.ReactionLove}))
	require.NoError(t, NewReportRepository(db).Create(ctx, &models.Report{PostID: 999, Reason: models.ReasonSpam}))
}
