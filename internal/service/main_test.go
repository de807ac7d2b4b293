package service

import (
	"testing"

	"confide/internal/models"
	"confide/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	posts   *PostService
	reacts  *ReactionService
	replies *ReplyService
	reports *ReportService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Post{},
		&models.Reaction{},
		&models.Reply{},
		&models.Report{},
	)
	require.NoError(t, err)

	postRepo := repository.NewPostRepository(db)
	reactionRepo := repository.NewReactionRepository(db)
	replyRepo := repository.NewReplyRepository(db)
	reportRepo := repository.NewReportRepository(db)

	return &testEnv{
		posts:   NewPostService(postRepo, reactionRepo),
		reacts:  NewReactionService(reactionRepo),
		replies: NewReplyService(replyRepo),
		reports: NewReportService(reportRepo),
	}
}
