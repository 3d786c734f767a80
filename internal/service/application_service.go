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

// ApplicationService drives the application state machine. Pending is the
// only state that can be left, and every transition runs inside a storage
// transaction so the status write and any roster insert commit together.
type ApplicationService interface {
	Apply(ctx context.Context, studentID uint, payload dto.ApplicationCreateRequest) (dto.ApplicationResponse, error)
	Approve(ctx context.Context, id, callerFacultyID uint) (dto.ApplicationResponse, error)
	Reject(ctx context.Context, id, callerFacultyID uint) (dto.ApplicationResponse, error)
	Withdraw(ctx context.Context, id, callerStudentID uint) (dto.ApplicationResponse, error)
	ListForStudent(ctx context.Context, studentID uint) ([]dto.ApplicationResponse, error)
	ListForProject(ctx context.Context, projectID uint, caller Principal) ([]dto.ApplicationResponse, error)
}

type applicationService struct {
	applications repository.ApplicationRepository
	projects     repository.ProjectRepository
	validator    *validator.Validate
	sanitizer    *bluemonday.Policy
	logger       zerolog.Logger
}

// NewApplicationService constructs an ApplicationService instance.
func NewApplicationService(applications repository.ApplicationRepository, projects repository.ProjectRepository, validate *validator.Validate, logger zerolog.Logger) ApplicationService {
	return &applicationService{
		applications: applications,
		projects:     projects,
		validator:    validate,
		sanitizer:    bluemonday.StrictPolicy(),
		logger:       logger.With().Str("component", "application_service").Logger(),
	}
}

func (s *applicationService) Apply(ctx context.Context, studentID uint, payload dto.ApplicationCreateRequest) (dto.ApplicationResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ApplicationResponse{}, err
	}

	project, err := s.projects.GetByID(ctx, payload.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ApplicationResponse{}, ErrProjectNotFound
		}
		return dto.ApplicationResponse{}, err
	}

	if !project.IsRecruiting() {
		return dto.ApplicationResponse{}, ErrProjectNotRecruiting
	}

	// Any prior application for the pair blocks re-application, including
	// withdrawn and rejected ones.
	exists, err := s.applications.HasForPair(ctx, studentID, payload.ProjectID)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}
	if exists {
		return dto.ApplicationResponse{}, ErrDuplicateApplication
	}

	application := models.Application{
		StudentID:   studentID,
		ProjectID:   payload.ProjectID,
		Status:      models.ApplicationStatusPending,
		CoverLetter: strings.TrimSpace(s.sanitizer.Sanitize(payload.CoverLetter)),
	}
	if err := s.applications.Create(ctx, &application); err != nil {
		// Two concurrent applies race past the existence check; the unique
		// pair index decides the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.ApplicationResponse{}, ErrDuplicateApplication
		}
		return dto.ApplicationResponse{}, err
	}

	created, err := s.applications.GetByID(ctx, application.ID)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}

	s.logger.Info().
		Uint("application_id", created.ID).
		Uint("student_id", studentID).
		Uint("project_id", payload.ProjectID).
		Msg("application submitted")

	return dto.NewApplicationResponse(created), nil
}

// Approve accepts a pending application and adds the student to the project
// roster. The roster insert and status change are one transaction; an approve
// that would exceed the project's capacity is refused.
func (s *applicationService) Approve(ctx context.Context, id, callerFacultyID uint) (dto.ApplicationResponse, error) {
	updated, err := s.applications.Transition(ctx, id, func(store repository.TransitionStore, application *models.Application) error {
		if application.Project.FacultyID != callerFacultyID {
			return ErrNotProjectOwner
		}
		if !application.IsPending() {
			return ErrApplicationNotPending
		}

		members, err := store.CountMembers(application.ProjectID)
		if err != nil {
			return err
		}
		if members >= int64(application.Project.MaxStudents) {
			return ErrProjectFull
		}

		if err := store.AddMember(application.ProjectID, application.StudentID); err != nil {
			return err
		}

		application.Status = models.ApplicationStatusAccepted
		return nil
	})
	if err != nil {
		return dto.ApplicationResponse{}, transitionError(err)
	}

	s.logger.Info().Uint("application_id", updated.ID).Msg("application accepted")

	return dto.NewApplicationResponse(updated), nil
}

func (s *applicationService) Reject(ctx context.Context, id, callerFacultyID uint) (dto.ApplicationResponse, error) {
	updated, err := s.applications.Transition(ctx, id, func(_ repository.TransitionStore, application *models.Application) error {
		if application.Project.FacultyID != callerFacultyID {
			return ErrNotProjectOwner
		}
		if !application.IsPending() {
			return ErrApplicationNotPending
		}

		application.Status = models.ApplicationStatusRejected
		return nil
	})
	if err != nil {
		return dto.ApplicationResponse{}, transitionError(err)
	}

	s.logger.Info().Uint("application_id", updated.ID).Msg("application rejected")

	return dto.NewApplicationResponse(updated), nil
}

func (s *applicationService) Withdraw(ctx context.Context, id, callerStudentID uint) (dto.ApplicationResponse, error) {
	updated, err := s.applications.Transition(ctx, id, func(_ repository.TransitionStore, application *models.Application) error {
		if application.StudentID != callerStudentID {
			return ErrNotApplicant
		}
		if !application.IsPending() {
			return ErrApplicationNotPending
		}

		application.Status = models.ApplicationStatusWithdrawn
		return nil
	})
	if err != nil {
		return dto.ApplicationResponse{}, transitionError(err)
	}

	s.logger.Info().Uint("application_id", updated.ID).Msg("application withdrawn")

	return dto.NewApplicationResponse(updated), nil
}

func (s *applicationService) ListForStudent(ctx context.Context, studentID uint) ([]dto.ApplicationResponse, error) {
	applications, err := s.applications.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return dto.NewApplicationResponseSlice(applications), nil
}

func (s *applicationService) ListForProject(ctx context.Context, projectID uint, caller Principal) ([]dto.ApplicationResponse, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if caller.Role != models.RoleAdmin && project.FacultyID != caller.ID {
		return nil, ErrNotProjectOwner
	}

	applications, err := s.applications.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return dto.NewApplicationResponseSlice(applications), nil
}

func transitionError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrApplicationNotFound
	}
	return err
}
