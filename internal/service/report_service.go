package service

import (
	"context"

	"confide/internal/models"
	"confide/internal/observability"
	"confide/internal/repository"
)

// ReportService files moderation reports against posts.
type ReportService struct {
	reportRepo repository.ReportRepository
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// FileReport validates the reason and stores the report. Inserts against a
// missing post id are accepted.
func (s *ReportService) FileReport(ctx context.Context, postID uint, reason string) (*models.Report, error) {
	if !models.IsReportReason(reason) {
		return nil, models.NewValidationError("Invalid report reason")
	}

	report := &models.Report{
		PostID: postID,
		Reason: reason,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	observability.ReportsFiled.WithLabelValues(reason).Inc()
	return report, nil
}
