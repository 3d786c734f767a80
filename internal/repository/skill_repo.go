package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/research-connect-api/internal/models"
)

// SkillRepository provides access to the skill catalogue.
type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	List(ctx context.Context) ([]models.Skill, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Skill, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository constructs a skill repository.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillRepository) List(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.WithContext(ctx).Order("name ASC").Find(&skills).Error
	return skills, err
}

func (r *skillRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Skill, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var skills []models.Skill
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&skills).Error
	return skills, err
}
