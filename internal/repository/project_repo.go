package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/research-connect-api/internal/models"
)

// ProjectFilter narrows project listings at the storage layer.
type ProjectFilter struct {
	Status    *string
	FacultyID *uint
}

// ProjectRepository provides access to research project postings.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uint) (models.Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]models.Project, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	ListMembers(ctx context.Context, projectID uint) ([]models.Student, error)
	CountMembers(ctx context.Context, projectID uint) (int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository constructs a project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) GetByID(ctx context.Context, id uint) (models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Faculty").
		Preload("Skills").
		First(&project, id).Error
	if err != nil {
		return models.Project{}, err
	}

	return project, nil
}

func (r *projectRepository) List(ctx context.Context, filter ProjectFilter) ([]models.Project, error) {
	query := r.db.WithContext(ctx).Preload("Skills")
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.FacultyID != nil {
		query = query.Where("faculty_id = ?", *filter.FacultyID)
	}

	var projects []models.Project
	err := query.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *projectRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the project together with its applications, roster rows and
// skill links in a single transaction.
func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Project{ID: id}).Association("Skills").Clear(); err != nil {
			return err
		}

		result := tx.Delete(&models.Project{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *projectRepository) ListMembers(ctx context.Context, projectID uint) ([]models.Student, error) {
	var students []models.Student
	err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Joins("JOIN project_members ON project_members.student_id = students.id").
		Where("project_members.project_id = ?", projectID).
		Order("project_members.joined_at ASC").
		Find(&students).Error
	return students, err
}

func (r *projectRepository) CountMembers(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProjectMember{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}
