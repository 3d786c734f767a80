package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/noah-isme/research-connect-api/internal/dto"
	"github.com/noah-isme/research-connect-api/internal/repository"
)

// AdminService aggregates platform-wide statistics and performs the
// destructive account operations reserved for administrators.
type AdminService interface {
	Summary(ctx context.Context) (dto.AdminSummaryResponse, error)
	DeleteStudent(ctx context.Context, id uint) error
	DeleteFaculty(ctx context.Context, id uint) error
}

type adminService struct {
	reports  repository.ReportRepository
	students repository.StudentRepository
	faculty  repository.FacultyRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

// NewAdminService constructs an AdminService instance. The cache client may
// be nil, in which case every summary hits the database.
func NewAdminService(reports repository.ReportRepository, students repository.StudentRepository, faculty repository.FacultyRepository, cache *redis.Client, cacheTTL time.Duration, logger zerolog.Logger) AdminService {
	return &adminService{
		reports:  reports,
		students: students,
		faculty:  faculty,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With().Str("component", "admin_service").Logger(),
		now:      time.Now,
	}
}

const summaryCacheKey = "admin:summary"

func (s *adminService) Summary(ctx context.Context) (dto.AdminSummaryResponse, error) {
	tracer := otel.Tracer("github.com/noah-isme/research-connect-api/internal/service/admin")
	ctx, span := tracer.Start(ctx, "admin.summary",
		trace.WithAttributes(attribute.String("summary.cache_key", summaryCacheKey)))
	defer span.End()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, summaryCacheKey).Result()
		if err == nil {
			var response dto.AdminSummaryResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				response.CacheHit = true
				span.SetAttributes(attribute.Bool("summary.cache_hit", true))
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read summary cache")
			span.RecordError(err)
		}
	}

	students, err := s.reports.CountStudents(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count_students_failed")
		return dto.AdminSummaryResponse{}, err
	}

	faculty, err := s.reports.CountFaculty(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count_faculty_failed")
		return dto.AdminSummaryResponse{}, err
	}

	projects, err := s.reports.CountProjects(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count_projects_failed")
		return dto.AdminSummaryResponse{}, err
	}

	pending, err := s.reports.CountPendingApplications(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "count_pending_applications_failed")
		return dto.AdminSummaryResponse{}, err
	}

	summary := dto.AdminSummaryResponse{
		Students:            students,
		Faculty:             faculty,
		Projects:            projects,
		PendingApplications: pending,
		GeneratedAt:         s.now().UTC(),
	}
	span.SetAttributes(
		attribute.Int64("summary.students", students),
		attribute.Int64("summary.pending_applications", pending),
	)

	if s.cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := s.cache.Set(ctx, summaryCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store summary cache")
				span.RecordError(err)
			}
		}
	}

	return summary, nil
}

func (s *adminService) DeleteStudent(ctx context.Context, id uint) error {
	if err := s.students.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	s.invalidateSummary(ctx)
	s.logger.Info().Uint("student_id", id).Msg("student account deleted")

	return nil
}

func (s *adminService) DeleteFaculty(ctx context.Context, id uint) error {
	if err := s.faculty.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFacultyNotFound
		}
		return err
	}

	s.invalidateSummary(ctx)
	s.logger.Info().Uint("faculty_id", id).Msg("faculty account deleted")

	return nil
}

func (s *adminService) invalidateSummary(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, summaryCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate summary cache")
	}
}
