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
	"github.com/noah-isme/research-connect-api/internal/models"
	"github.com/noah-isme/research-connect-api/internal/repository"
)

// ProjectService manages research project postings.
type ProjectService interface {
	Create(ctx context.Context, facultyID uint, payload dto.ProjectCreateRequest) (dto.ProjectResponse, error)
	Get(ctx context.Context, id uint) (dto.ProjectResponse, error)
	List(ctx context.Context, filter dto.ProjectFilter) ([]dto.ProjectResponse, error)
	UpdateStatus(ctx context.Context, projectID, callerFacultyID uint, payload dto.ProjectStatusUpdateRequest) (dto.ProjectResponse, error)
	Delete(ctx context.Context, projectID uint) error
	Members(ctx context.Context, projectID uint) ([]dto.StudentResponse, error)
}

type projectService struct {
	projects  repository.ProjectRepository
	skills    repository.SkillRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewProjectService constructs a ProjectService instance.
func NewProjectService(projects repository.ProjectRepository, skills repository.SkillRepository, validate *validator.Validate, logger zerolog.Logger) ProjectService {
	return &projectService{
		projects:  projects,
		skills:    skills,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "project_service").Logger(),
	}
}

// Create inserts a new posting. Status is always Recruiting at creation,
// whatever the caller sends.
func (s *projectService) Create(ctx context.Context, facultyID uint, payload dto.ProjectCreateRequest) (dto.ProjectResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ProjectResponse{}, err
	}

	desired, err := s.resolveSkills(ctx, payload.SkillIDs)
	if err != nil {
		return dto.ProjectResponse{}, err
	}

	project := models.Project{
		Title:       strings.TrimSpace(payload.Title),
		Description: strings.TrimSpace(s.sanitizer.Sanitize(payload.Description)),
		Status:      models.ProjectStatusRecruiting,
		MaxStudents: payload.MaxStudents,
		FacultyID:   facultyID,
		Skills:      desired,
	}
	if err := s.projects.Create(ctx, &project); err != nil {
		return dto.ProjectResponse{}, err
	}

	created, err := s.projects.GetByID(ctx, project.ID)
	if err != nil {
		return dto.ProjectResponse{}, err
	}

	s.logger.Info().Uint("project_id", created.ID).Uint("faculty_id", facultyID).Msg("project created")

	return dto.NewProjectResponse(created), nil
}

func (s *projectService) Get(ctx context.Context, id uint) (dto.ProjectResponse, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProjectResponse{}, ErrProjectNotFound
		}
		return dto.ProjectResponse{}, err
	}

	return dto.NewProjectResponse(project), nil
}

func (s *projectService) List(ctx context.Context, filter dto.ProjectFilter) ([]dto.ProjectResponse, error) {
	if filter.Status != nil && !models.ValidProjectStatus(*filter.Status) {
		return nil, ErrInvalidProjectStatus
	}

	projects, err := s.projects.List(ctx, repository.ProjectFilter{
		Status:    filter.Status,
		FacultyID: filter.FacultyID,
	})
	if err != nil {
		return nil, err
	}

	return dto.NewProjectResponseSlice(projects), nil
}

// UpdateStatus changes the posting status. Only the owning faculty may do so.
func (s *projectService) UpdateStatus(ctx context.Context, projectID, callerFacultyID uint, payload dto.ProjectStatusUpdateRequest) (dto.ProjectResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ProjectResponse{}, err
	}
	if !models.ValidProjectStatus(payload.Status) {
		return dto.ProjectResponse{}, ErrInvalidProjectStatus
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProjectResponse{}, ErrProjectNotFound
		}
		return dto.ProjectResponse{}, err
	}

	if project.FacultyID != callerFacultyID {
		return dto.ProjectResponse{}, ErrNotProjectOwner
	}

	if err := s.projects.UpdateStatus(ctx, projectID, payload.Status); err != nil {
		return dto.ProjectResponse{}, err
	}

	updated, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return dto.ProjectResponse{}, err
	}

	s.logger.Info().Uint("project_id", projectID).Str("status", payload.Status).Msg("project status updated")

	return dto.NewProjectResponse(updated), nil
}

// Delete removes the posting with its applications and roster rows. Admin
// gating happens at the route level.
func (s *projectService) Delete(ctx context.Context, projectID uint) error {
	if err := s.projects.Delete(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	s.logger.Info().Uint("project_id", projectID).Msg("project deleted")

	return nil
}

func (s *projectService) Members(ctx context.Context, projectID uint) ([]dto.StudentResponse, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	members, err := s.projects.ListMembers(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return dto.NewStudentResponseSlice(members), nil
}

func (s *projectService) resolveSkills(ctx context.Context, ids []uint) ([]models.Skill, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	unique := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	skills, err := s.skills.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(skills) != len(unique) {
		return nil, ErrSkillNotFound
	}

	return skills, nil
}
