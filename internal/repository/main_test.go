package repository

import (
	"testing"
	"time"

	"confide/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory store with the four tables migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Post{},
		&models.Reaction{},
		&models.Reply{},
		&models.Report{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	return db
}

// mustCreatePost inserts a post with the given text and creation time.
func mustCreatePost(t *testing.T, db *gorm.DB, text string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, Mood: models.MoodNone, CreatedAt: createdAt}
	require.NoError(t, db.Create(post).Error)
	return post
}
