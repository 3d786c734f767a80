package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/research-connect-api/internal/dto"
	"github.com/noah-isme/research-connect-api/internal/models"
	"github.com/noah-isme/research-connect-api/internal/repository"
	"github.com/noah-isme/research-connect-api/internal/utils"
)

// AuthService handles account registration and credential verification.
type AuthService interface {
	Signup(ctx context.Context, payload dto.SignupRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, payload dto.LoginRequest) (dto.AuthResponse, error)
}

type authService struct {
	students  repository.StudentRepository
	faculty   repository.FacultyRepository
	admins    repository.AdminRepository
	validator *validator.Validate
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(students repository.StudentRepository, faculty repository.FacultyRepository, admins repository.AdminRepository, validate *validator.Validate, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) AuthService {
	return &authService{
		students:  students,
		faculty:   faculty,
		admins:    admins,
		validator: validate,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		now:       time.Now,
	}
}

func (s *authService) Signup(ctx context.Context, payload dto.SignupRequest) (dto.AuthResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AuthResponse{}, err
	}

	hash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return dto.AuthResponse{}, err
	}

	switch payload.Role {
	case models.RoleStudent:
		return s.signupStudent(ctx, payload, hash)
	case models.RoleFaculty:
		return s.signupFaculty(ctx, payload, hash)
	default:
		return dto.AuthResponse{}, ErrInvalidCredentials
	}
}

func (s *authService) signupStudent(ctx context.Context, payload dto.SignupRequest, hash string) (dto.AuthResponse, error) {
	if _, err := s.students.GetByEmail(ctx, payload.Email); err == nil {
		return dto.AuthResponse{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AuthResponse{}, err
	}

	student := models.Student{
		FirstName:         payload.FirstName,
		LastName:          payload.LastName,
		Email:             payload.Email,
		Password:          hash,
		Major:             payload.Major,
		GPA:               payload.GPA,
		YearLevel:         payload.YearLevel,
		ResearchInterests: payload.ResearchInterests,
	}
	if err := s.students.Create(ctx, &student); err != nil {
		// The unique index catches a concurrent signup with the same email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.AuthResponse{}, ErrEmailTaken
		}
		return dto.AuthResponse{}, err
	}

	s.logger.Info().Uint("student_id", student.ID).Msg("student account created")

	return s.issue(student.ID, models.RoleStudent, student.FullName(), student.Email)
}

func (s *authService) signupFaculty(ctx context.Context, payload dto.SignupRequest, hash string) (dto.AuthResponse, error) {
	if _, err := s.faculty.GetByEmail(ctx, payload.Email); err == nil {
		return dto.AuthResponse{}, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AuthResponse{}, err
	}

	faculty := models.Faculty{
		FirstName:     payload.FirstName,
		LastName:      payload.LastName,
		Email:         payload.Email,
		Password:      hash,
		Department:    payload.Department,
		ResearchAreas: payload.ResearchAreas,
	}
	if err := s.faculty.Create(ctx, &faculty); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.AuthResponse{}, ErrEmailTaken
		}
		return dto.AuthResponse{}, err
	}

	s.logger.Info().Uint("faculty_id", faculty.ID).Msg("faculty account created")

	return s.issue(faculty.ID, models.RoleFaculty, faculty.FullName(), faculty.Email)
}

// Login verifies the supplied credentials against the role's account table.
// Every role, including admin, must pass the bcrypt comparison.
func (s *authService) Login(ctx context.Context, payload dto.LoginRequest) (dto.AuthResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AuthResponse{}, err
	}

	var (
		id    uint
		name  string
		hash  string
		email string
	)

	switch payload.Role {
	case models.RoleStudent:
		student, err := s.students.GetByEmail(ctx, payload.Email)
		if err != nil {
			return dto.AuthResponse{}, loginLookupError(err)
		}
		id, name, hash, email = student.ID, student.FullName(), student.Password, student.Email
	case models.RoleFaculty:
		faculty, err := s.faculty.GetByEmail(ctx, payload.Email)
		if err != nil {
			return dto.AuthResponse{}, loginLookupError(err)
		}
		id, name, hash, email = faculty.ID, faculty.FullName(), faculty.Password, faculty.Email
	case models.RoleAdmin:
		admin, err := s.admins.GetByEmail(ctx, payload.Email)
		if err != nil {
			return dto.AuthResponse{}, loginLookupError(err)
		}
		id, name, hash, email = admin.ID, admin.FullName(), admin.Password, admin.Email
	default:
		return dto.AuthResponse{}, ErrInvalidCredentials
	}

	if !utils.CheckPassword(payload.Password, hash) {
		return dto.AuthResponse{}, ErrInvalidCredentials
	}

	s.logger.Info().Uint("user_id", id).Str("role", payload.Role).Msg("login succeeded")

	return s.issue(id, payload.Role, name, email)
}

func (s *authService) issue(id uint, role, name, email string) (dto.AuthResponse, error) {
	now := s.now()
	expires := now.Add(s.tokenTTL)

	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(id), 10),
		"role": role,
		"name": name,
		"iat":  now.Unix(),
		"exp":  expires.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return dto.AuthResponse{}, err
	}

	return dto.AuthResponse{
		Token:     signed,
		Role:      role,
		UserID:    id,
		Name:      name,
		Email:     email,
		ExpiresAt: expires,
	}, nil
}

func loginLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidCredentials
	}
	return err
}
