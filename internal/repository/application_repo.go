package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/noah-isme/research-connect-api/internal/models"
)

// TransitionStore exposes the storage operations permitted inside an
// application state transition. All calls run within the transition's
// transaction, so the status write and any roster mutation commit together
// or not at all.
type TransitionStore interface {
	CountMembers(projectID uint) (int64, error)
	AddMember(projectID, studentID uint) error
}

// ApplicationRepository provides access to application records and their
// transactional state transitions.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uint) (models.Application, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.Application, error)
	ListByProject(ctx context.Context, projectID uint) ([]models.Application, error)
	HasForPair(ctx context.Context, studentID, projectID uint) (bool, error)
	Transition(ctx context.Context, id uint, fn func(store TransitionStore, application *models.Application) error) (models.Application, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository constructs an application repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Project").
		First(&application, id).Error
	if err != nil {
		return models.Application{}, err
	}

	return application, nil
}

func (r *applicationRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) ListByProject(ctx context.Context, projectID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) HasForPair(ctx context.Context, studentID, projectID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("student_id = ? AND project_id = ?", studentID, projectID).
		Count(&count).Error
	return count > 0, err
}

// Transition loads the application inside a transaction, row-locked on
// dialects that support it, and hands it to fn for validation and mutation.
// A status change made by fn is persisted before commit; any error rolls the
// whole transition back.
func (r *applicationRepository) Transition(ctx context.Context, id uint, fn func(store TransitionStore, application *models.Application) error) (models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Preload("Student").Preload("Project")
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := query.First(&application, id).Error; err != nil {
			return err
		}

		before := application.Status
		if err := fn(&transitionStore{tx: tx}, &application); err != nil {
			return err
		}

		if application.Status == before {
			return nil
		}

		return tx.Model(&models.Application{}).
			Where("id = ?", application.ID).
			Update("status", application.Status).Error
	})
	if err != nil {
		return models.Application{}, err
	}

	return application, nil
}

type transitionStore struct {
	tx *gorm.DB
}

func (s *transitionStore) CountMembers(projectID uint) (int64, error) {
	var count int64
	err := s.tx.Model(&models.ProjectMember{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}

func (s *transitionStore) AddMember(projectID, studentID uint) error {
	return s.tx.Create(&models.ProjectMember{ProjectID: projectID, StudentID: studentID}).Error
}
