package models

import (
	"time"
)

// Report reasons. A report citing anything else is rejected.
const (
	ReasonSpam          = "spam"
	ReasonInappropriate = "inappropriate"
	ReasonHarassment    = "harassment"
	ReasonHateSpeech    = "hate_speech"
	ReasonViolence      = "violence"
	ReasonCopyright     = "copyright"
	ReasonOther         = "other"
)

// Report is a flag raised against a post citing one of a fixed set of reasons.
// Append-only.
type Report struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Reason    string    `gorm:"size:32;not null" json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// IsReportReason reports whether r is one of the known report reasons.
func IsReportReason(r string) bool {
	switch r {
	case ReasonSpam, ReasonInappropriate, ReasonHarassment,
		ReasonHateSpeech, ReasonViolence, ReasonCopyright, ReasonOther:
		return true
	default:
		return false
	}
}
