package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostsCreated counts confessions created since process start.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confide_posts_created_total",
		Help: "Total number of confessions created",
	})

	// PostsDeleted counts confessions deleted, children included.
	PostsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confide_posts_deleted_total",
		Help: "Total number of confessions deleted",
	})

	// ReactionsRecorded counts reactions by type.
	ReactionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "confide_reactions_recorded_total",
		Help: "Total number of reactions recorded by type",
	}, []string{"type"})

	// RepliesCreated counts replies attached to confessions.
	RepliesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "confide_replies_created_total",
		Help: "Total number of replies created",
	})

	// ReportsFiled counts moderation reports by reason.
	ReportsFiled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "confide_reports_filed_total",
		Help: "Total number of reports filed by reason",
	}, []string{"reason"})
)
