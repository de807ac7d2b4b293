package repository

import (
	"context"

	"confide/internal/models"

	"gorm.io/gorm"
)

// ReportRepository defines the interface for report data operations. Append-only.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}
