package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/research-connect-api/internal/models"
)

// ReportRepository supplies aggregate counts for the admin summary.
type ReportRepository interface {
	CountStudents(ctx context.Context) (int64, error)
	CountFaculty(ctx context.Context) (int64, error)
	CountProjects(ctx context.Context) (int64, error)
	CountPendingApplications(ctx context.Context) (int64, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository constructs the report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Student{}).Count(&count).Error
	return count, err
}

func (r *reportRepository) CountFaculty(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Faculty{}).Count(&count).Error
	return count, err
}

func (r *reportRepository) CountProjects(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&count).Error
	return count, err
}

func (r *reportRepository) CountPendingApplications(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("status = ?", models.ApplicationStatusPending).
		Count(&count).Error
	return count, err
}
