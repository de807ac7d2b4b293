package database

import (
	"path/filepath"
	"testing"

	"confide/internal/config"
	"confide/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestConnect_Sqlite(t *testing.T) {
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
	}

	db, err := Connect(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	require.NoError(t, sqlDB.Ping())

	for _, table := range []string{"posts", "reactions", "replies", "reports"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, EnsureSchema(db))
	require.NoError(t, EnsureSchema(db))

	assert.True(t, db.Migrator().HasColumn(&models.Post{}, "image"))
	// the computed feed counters never become physical columns
	assert.False(t, db.Migrator().HasColumn(&models.Post{}, "reaction_count"))
	assert.False(t, db.Migrator().HasColumn(&models.Post{}, "reply_count"))
}

// Stores created before posts carried an image get the column added on startup.
func TestEnsureSchema_AddsImageColumn(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	type legacyPost struct {
		ID        uint   `gorm:"primaryKey"`
		Text      string `gorm:"type:text;not null"`
		Mood      string `gorm:"size:16;not null;default:none"`
		Likes     int    `gorm:"not null;default:0"`
		Reposts   int    `gorm:"not null;default:0"`
		CreatedAt int64
	}
	require.NoError(t, db.Table("posts").AutoMigrate(&legacyPost{}))
	require.False(t, db.Migrator().HasColumn(&models.Post{}, "image"))

	require.NoError(t, EnsureSchema(db))
	assert.True(t, db.Migrator().HasColumn(&models.Post{}, "image"))
}
