package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/research-connect-api/internal/dto"
	"github.com/noah-isme/research-connect-api/internal/repository"
)

// FacultyService manages faculty profiles.
type FacultyService interface {
	List(ctx context.Context) ([]dto.FacultyResponse, error)
	Get(ctx context.Context, id uint) (dto.FacultyResponse, error)
	UpdateProfile(ctx context.Context, id, callerID uint, payload dto.FacultyUpdateRequest) (dto.FacultyResponse, error)
}

type facultyService struct {
	faculty   repository.FacultyRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewFacultyService constructs a FacultyService instance.
func NewFacultyService(faculty repository.FacultyRepository, validate *validator.Validate, logger zerolog.Logger) FacultyService {
	return &facultyService{
		faculty:   faculty,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "faculty_service").Logger(),
	}
}

func (s *facultyService) List(ctx context.Context) ([]dto.FacultyResponse, error) {
	faculty, err := s.faculty.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewFacultyResponseSlice(faculty), nil
}

func (s *facultyService) Get(ctx context.Context, id uint) (dto.FacultyResponse, error) {
	faculty, err := s.faculty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.FacultyResponse{}, ErrFacultyNotFound
		}
		return dto.FacultyResponse{}, err
	}

	return dto.NewFacultyResponse(faculty), nil
}

// UpdateProfile applies the non-nil fields. Faculty may only edit themselves.
func (s *facultyService) UpdateProfile(ctx context.Context, id, callerID uint, payload dto.FacultyUpdateRequest) (dto.FacultyResponse, error) {
	if id != callerID {
		return dto.FacultyResponse{}, ErrForbidden
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.FacultyResponse{}, err
	}

	faculty, err := s.faculty.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.FacultyResponse{}, ErrFacultyNotFound
		}
		return dto.FacultyResponse{}, err
	}

	if payload.FirstName != nil {
		faculty.FirstName = strings.TrimSpace(*payload.FirstName)
	}
	if payload.LastName != nil {
		faculty.LastName = strings.TrimSpace(*payload.LastName)
	}
	if payload.Department != nil {
		faculty.Department = strings.TrimSpace(*payload.Department)
	}
	if payload.ResearchAreas != nil {
		faculty.ResearchAreas = strings.TrimSpace(s.sanitizer.Sanitize(*payload.ResearchAreas))
	}

	if err := s.faculty.Update(ctx, &faculty); err != nil {
		return dto.FacultyResponse{}, err
	}

	s.logger.Info().Uint("faculty_id", id).Msg("faculty profile updated")

	return dto.NewFacultyResponse(faculty), nil
}
