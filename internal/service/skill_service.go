package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/research-connect-api/internal/dto"
	"github.com/noah-isme/research-connect-api/internal/models"
	"github.com/noah-isme/research-connect-api/internal/repository"
)

// SkillService manages the shared skill catalogue.
type SkillService interface {
	List(ctx context.Context) ([]dto.SkillResponse, error)
	Create(ctx context.Context, payload dto.SkillCreateRequest) (dto.SkillResponse, error)
}

type skillService struct {
	skills    repository.SkillRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewSkillService constructs a SkillService instance.
func NewSkillService(skills repository.SkillRepository, validate *validator.Validate, logger zerolog.Logger) SkillService {
	return &skillService{
		skills:    skills,
		validator: validate,
		logger:    logger.With().Str("component", "skill_service").Logger(),
	}
}

func (s *skillService) List(ctx context.Context) ([]dto.SkillResponse, error) {
	skills, err := s.skills.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewSkillResponseSlice(skills), nil
}

func (s *skillService) Create(ctx context.Context, payload dto.SkillCreateRequest) (dto.SkillResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SkillResponse{}, err
	}

	skill := models.Skill{
		Name:     strings.TrimSpace(payload.Name),
		Category: strings.TrimSpace(payload.Category),
	}
	if err := s.skills.Create(ctx, &skill); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.SkillResponse{}, ErrSkillExists
		}
		return dto.SkillResponse{}, err
	}

	s.logger.Info().Uint("skill_id", skill.ID).Str("name", skill.Name).Msg("skill created")

	return dto.NewSkillResponse(skill), nil
}
