// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"confide/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much demo data is generated.
type Options struct {
	Posts          int
	MaxReactions   int // max reactions per post
	MaxReplies     int // max replies per post
	MaxDays        int // spread of post timestamps into the past
	ReportFraction float64
	DryRun         bool
}

// DefaultOptions returns the preset used by cmd/seed.
func DefaultOptions() Options {
	return Options{
		Posts:          50,
		MaxReactions:   12,
		MaxReplies:     5,
		MaxDays:        30,
		ReportFraction: 0.05,
	}
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// truncateRunes shortens s to at most max characters. Counting runes rather
// than bytes keeps a multibyte character from being split mid-sequence.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

var moods = []string{
	models.MoodNone, models.MoodLove, models.MoodHappy, models.MoodSad,
	models.MoodAngry, models.MoodAnxious, models.MoodExcited,
}

var reactionTypes = []string{
	models.ReactionLove, models.ReactionHaha, models.ReactionSad,
	models.ReactionAngry, models.ReactionFire,
}

var reportReasons = []string{
	models.ReasonSpam, models.ReasonInappropriate, models.ReasonHarassment,
	models.ReasonHateSpeech, models.ReasonViolence, models.ReasonCopyright,
	models.ReasonOther,
}

// BuildPost constructs a confession without persisting it.
func (f *Factory) BuildPost(overrides ...func(*models.Post)) *models.Post {
	text := truncateRunes(gofakeit.Sentence(6+f.rand.Intn(20)), models.MaxPostTextLen)

	post := &models.Post{
		Text: text,
		Mood: moods[f.rand.Intn(len(moods))],
	}

	if f.rand.Float64() < 0.3 {
		img := fmt.Sprintf("https://picsum.photos/seed/%s/600/400", gofakeit.UUID())
		post.Image = &img
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 30
	}
	daysBack := f.rand.Intn(maxDays)
	hoursBack := f.rand.Intn(24)
	minsBack := f.rand.Intn(60)
	post.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute)

	for _, override := range overrides {
		override(post)
	}
	return post
}

// CreatePost persists a generated confession.
func (f *Factory) CreatePost(overrides ...func(*models.Post)) (*models.Post, error) {
	post := f.BuildPost(overrides...)
	if f.opts.DryRun {
		log.Printf("[dry-run] CreatePost: %q mood=%s", post.Text, post.Mood)
		return post, nil
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Run generates the full preset: posts with reactions, replies, counters and
// the occasional report.
func (f *Factory) Run() error {
	for i := 0; i < f.opts.Posts; i++ {
		post, err := f.CreatePost()
		if err != nil {
			return fmt.Errorf("seed post %d: %w", i, err)
		}
		if f.opts.DryRun {
			continue
		}

		if err := f.attachChildren(post); err != nil {
			return err
		}

		likes := f.rand.Intn(20)
		reposts := f.rand.Intn(5)
		if likes > 0 || reposts > 0 {
			if err := f.db.Model(post).
				Updates(map[string]interface{}{"likes": likes, "reposts": reposts}).Error; err != nil {
				return err
			}
		}
	}
	log.Printf("seeded %d posts", f.opts.Posts)
	return nil
}

func (f *Factory) attachChildren(post *models.Post) error {
	nReactions := f.rand.Intn(f.opts.MaxReactions + 1)
	for j := 0; j < nReactions; j++ {
		reaction := &models.Reaction{
			PostID: post.ID,
			Type:   reactionTypes[f.rand.Intn(len(reactionTypes))],
		}
		if err := f.db.Create(reaction).Error; err != nil {
			return err
		}
	}

	nReplies := f.rand.Intn(f.opts.MaxReplies + 1)
	for j := 0; j < nReplies; j++ {
		reply := &models.Reply{
			PostID: post.ID,
			Text:   gofakeit.Sentence(4 + f.rand.Intn(12)),
		}
		if err := f.db.Create(reply).Error; err != nil {
			return err
		}
	}

	if f.rand.Float64() < f.opts.ReportFraction {
		report := &models.Report{
			PostID: post.ID,
			Reason: reportReasons[f.rand.Intn(len(reportReasons))],
		}
		if err := f.db.Create(report).Error; err != nil {
			return err
		}
	}
	return nil
}
