package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The top-sort score must repeat the reaction subquery rather than reference
// the reaction_count alias: postgres resolves names inside an ORDER BY
// expression against input columns, where the alias does not exist.
func TestPostRepository_List_TopOrderQueryShape(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT posts.*, (SELECT COUNT(*) FROM reactions WHERE reactions.post_id = posts.id) as reaction_count, ` +
			`(SELECT COUNT(*) FROM replies WHERE replies.post_id = posts.id) as reply_count FROM "posts" ` +
			`ORDER BY ((SELECT COUNT(*) FROM reactions WHERE reactions.post_id = posts.id) + reposts + likes) DESC, id DESC`,
	)).WillReturnRows(sqlmock.NewRows(
		[]string{"id", "text", "mood", "likes", "reposts", "reaction_count", "reply_count"}).
		AddRow(2, "loud", "none", 1, 0, 4, 0).
		AddRow(1, "quiet", "none", 0, 0, 0, 0))

	posts, err := repo.List(context.Background(), SortTop)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "loud", posts[0].Text)
	assert.Equal(t, 4, posts[0].ReactionCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Incrementing a counter is one UPDATE ... RETURNING statement, so two
// concurrent likes can never read back the same post-increment value.
func TestPostRepository_IncrementLikes_SingleStatement(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(
		`UPDATE "posts" SET "likes"=likes + 1 WHERE id = $1 RETURNING "likes"`,
	)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(3))
	mock.ExpectCommit()

	likes, err := repo.IncrementLikes(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 3, likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
