package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/research-connect-api/internal/dto"
	"github.com/noah-isme/research-connect-api/internal/middleware"
	"github.com/noah-isme/research-connect-api/internal/models"
	"github.com/noah-isme/research-connect-api/internal/repository"
	"github.com/noah-isme/research-connect-api/internal/service"
	"github.com/noah-isme/research-connect-api/internal/utils"
)

const testJWTSecret = "handler-test-secret"

// envelope mirrors utils.APIResponse with raw data for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Student{},
		&models.Faculty{},
		&models.Admin{},
		&models.Skill{},
		&models.Project{},
		&models.ProjectMember{},
		&models.Application{},
	))

	logger := zerolog.New(io.Discard)
	validate := validator.New()

	studentRepo := repository.NewStudentRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authService := service.NewAuthService(studentRepo, facultyRepo, adminRepo, validate, testJWTSecret, time.Hour, logger)
	studentService := service.NewStudentService(studentRepo, skillRepo, validate, logger)
	facultyService := service.NewFacultyService(facultyRepo, validate, logger)
	skillService := service.NewSkillService(skillRepo, validate, logger)
	projectService := service.NewProjectService(projectRepo, skillRepo, validate, logger)
	applicationService := service.NewApplicationService(applicationRepo, projectRepo, validate, logger)
	adminService := service.NewAdminService(reportRepo, studentRepo, facultyRepo, nil, time.Minute, logger)

	app := fiber.New()
	api := app.Group("/api/v1")

	NewAuthHandler(authService, logger).Register(api.Group("/auth"))

	protect := middleware.JWTProtected(testJWTSecret)
	NewStudentHandler(studentService, logger).Register(api.Group("/students", protect))
	NewFacultyHandler(facultyService, logger).Register(api.Group("/faculty", protect))
	NewSkillHandler(skillService, logger).Register(api.Group("/skills", protect))
	NewProjectHandler(projectService, logger).Register(api.Group("/projects", protect))
	NewApplicationHandler(applicationService, logger).Register(api.Group("/applications", protect))
	NewAdminHandler(adminService, logger).Register(api.Group("/admin", protect, middleware.RequireRole(models.RoleAdmin)))

	return &testEnv{app: app, db: db}
}

// request performs a JSON request and decodes the response envelope.
func (e *testEnv) request(t *testing.T, method, path, token string, payload interface{}) (int, envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &result))

	return resp.StatusCode, result
}

// signup registers an account and returns the issued token and user id.
func (e *testEnv) signup(t *testing.T, role, email string) (string, uint) {
	t.Helper()

	status, response := e.request(t, http.MethodPost, "/api/v1/auth/signup", "", dto.SignupRequest{
		Role:      role,
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "super-secret-pw",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(response.Data, &auth))
	require.NotEmpty(t, auth.Token)

	return auth.Token, auth.UserID
}

// adminToken seeds an administrator row and logs in as it.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()

	hash, err := utils.HashPassword("admin-secret-pw")
	require.NoError(t, err)
	admin := models.Admin{FirstName: "Root", LastName: "Admin", Email: "root@example.edu", Password: hash}
	require.NoError(t, e.db.Create(&admin).Error)

	status, response := e.request(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "root@example.edu",
		Password: "admin-secret-pw",
		Role:     models.RoleAdmin,
	})
	require.Equal(t, fiber.StatusOK, status)

	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(response.Data, &auth))
	return auth.Token
}

// createProject posts a recruiting project as the given faculty token.
func (e *testEnv) createProject(t *testing.T, token string, maxStudents int) uint {
	t.Helper()

	status, response := e.request(t, http.MethodPost, "/api/v1/projects", token, dto.ProjectCreateRequest{
		Title:       "Graph Mining",
		Description: "Mining large graphs",
		MaxStudents: maxStudents,
	})
	require.Equal(t, fiber.StatusCreated, status)

	var project dto.ProjectResponse
	require.NoError(t, json.Unmarshal(response.Data, &project))
	return project.ID
}
