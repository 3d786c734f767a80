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

// StudentService manages student profiles.
type StudentService interface {
	List(ctx context.Context) ([]dto.StudentResponse, error)
	Get(ctx context.Context, id uint) (dto.StudentResponse, error)
	UpdateProfile(ctx context.Context, id, callerID uint, payload dto.StudentUpdateRequest) (dto.StudentResponse, error)
	ReplaceSkills(ctx context.Context, id, callerID uint, payload dto.StudentSkillsRequest) (dto.StudentResponse, error)
}

type studentService struct {
	students  repository.StudentRepository
	skills    repository.SkillRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewStudentService constructs a StudentService instance.
func NewStudentService(students repository.StudentRepository, skills repository.SkillRepository, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		students:  students,
		skills:    skills,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) List(ctx context.Context) ([]dto.StudentResponse, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewStudentResponseSlice(students), nil
}

func (s *studentService) Get(ctx context.Context, id uint) (dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}
		return dto.StudentResponse{}, err
	}

	return dto.NewStudentResponse(student), nil
}

// UpdateProfile applies the non-nil fields. Students may only edit themselves.
func (s *studentService) UpdateProfile(ctx context.Context, id, callerID uint, payload dto.StudentUpdateRequest) (dto.StudentResponse, error) {
	if id != callerID {
		return dto.StudentResponse{}, ErrForbidden
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}
		return dto.StudentResponse{}, err
	}

	if payload.FirstName != nil {
		student.FirstName = strings.TrimSpace(*payload.FirstName)
	}
	if payload.LastName != nil {
		student.LastName = strings.TrimSpace(*payload.LastName)
	}
	if payload.Major != nil {
		student.Major = strings.TrimSpace(*payload.Major)
	}
	if payload.GPA != nil {
		student.GPA = payload.GPA
	}
	if payload.YearLevel != nil {
		student.YearLevel = *payload.YearLevel
	}
	if payload.ResearchInterests != nil {
		student.ResearchInterests = strings.TrimSpace(s.sanitizer.Sanitize(*payload.ResearchInterests))
	}

	if err := s.students.Update(ctx, &student); err != nil {
		return dto.StudentResponse{}, err
	}

	s.logger.Info().Uint("student_id", id).Msg("student profile updated")

	return dto.NewStudentResponse(student), nil
}

// ReplaceSkills swaps the student's possessed skill set for the given ids.
func (s *studentService) ReplaceSkills(ctx context.Context, id, callerID uint, payload dto.StudentSkillsRequest) (dto.StudentResponse, error) {
	if id != callerID {
		return dto.StudentResponse{}, ErrForbidden
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	if _, err := s.students.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.StudentResponse{}, ErrStudentNotFound
		}
		return dto.StudentResponse{}, err
	}

	unique := make(map[uint]struct{}, len(payload.SkillIDs))
	for _, skillID := range payload.SkillIDs {
		unique[skillID] = struct{}{}
	}

	skills, err := s.skills.GetByIDs(ctx, payload.SkillIDs)
	if err != nil {
		return dto.StudentResponse{}, err
	}
	if len(skills) != len(unique) {
		return dto.StudentResponse{}, ErrSkillNotFound
	}

	if err := s.students.ReplaceSkills(ctx, id, skills); err != nil {
		return dto.StudentResponse{}, err
	}

	updated, err := s.students.GetByID(ctx, id)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	s.logger.Info().Uint("student_id", id).Int("skill_count", len(skills)).Msg("student skills replaced")

	return dto.NewStudentResponse(updated), nil
}
