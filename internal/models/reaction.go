package models

import (
	"time"
)

// Reaction types clients may attach to a post. Unlike moods, an unknown type
// is rejected outright.
const (
	ReactionLove  = "love"
	ReactionHaha  = "haha"
	ReactionSad   = "sad"
	ReactionAngry = "angry"
	ReactionFire  = "fire"
)

// Reaction is a lightweight typed acknowledgment attached to a post.
// Rows are append-only: never updated, deleted only when the parent post is.
type Reaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Type      string    `gorm:"size:16;not null" json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// IsReactionType reports whether t is one of the known reaction types.
func IsReactionType(t string) bool {
	switch t {
	case ReactionLove, ReactionHaha, ReactionSad, ReactionAngry, ReactionFire:
		return true
	default:
		return false
	}
}
