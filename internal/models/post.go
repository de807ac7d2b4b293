// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Mood values a post may carry. Anything outside this set is coerced to
// MoodNone rather than rejected.
const (
	MoodNone    = "none"
	MoodLove    = "love"
	MoodHappy   = "happy"
	MoodSad     = "sad"
	MoodAngry   = "angry"
	MoodAnxious = "anxious"
	MoodExcited = "excited"
)

// MaxPostTextLen is the maximum length of a post's text after trimming,
// counted in characters.
const MaxPostTextLen = 280

// Post represents a single anonymous confession, the root entity of the feed.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Mood      string    `gorm:"size:16;not null;default:none" json:"mood"`
	Image     *string   `gorm:"type:text" json:"image"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	Reposts   int       `gorm:"not null;default:0" json:"reposts"`
	CreatedAt time.Time `json:"created_at"`
	// ReactionCount is not persisted; computed at query time
	ReactionCount int `gorm:"->;-:migration" json:"reaction_count"`
	// ReplyCount is not persisted; computed at query time
	ReplyCount int `gorm:"->;-:migration" json:"reply_count"`
	// Reactions maps reaction type to count; assembled by the service layer
	Reactions map[string]int `gorm:"-" json:"reactions"`
}

// NormalizeMood returns mood if it is a known value, MoodNone otherwise.
func NormalizeMood(mood string) string {
	switch mood {
	case MoodNone, MoodLove, MoodHappy, MoodSad, MoodAngry, MoodAnxious, MoodExcited:
		return mood
	default:
		return MoodNone
	}
}
