package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/research-connect-api/internal/dto"
	"github.com/noah-isme/research-connect-api/internal/models"
)

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	env := newTestEnv(t)

	studentToken, _ := env.signup(t, models.RoleStudent, "ada@example.edu")
	facultyToken, _ := env.signup(t, models.RoleFaculty, "grace@example.edu")

	for _, token := range []string{studentToken, facultyToken} {
		status, _ := env.request(t, http.MethodGet, "/api/v1/admin/summary", token, nil)
		require.Equal(t, fiber.StatusForbidden, status)
	}

	status, _ := env.request(t, http.MethodGet, "/api/v1/admin/summary", "", nil)
	require.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAdminSummaryReportsCounts(t *testing.T) {
	env := newTestEnv(t)

	studentToken, _ := env.signup(t, models.RoleStudent, "ada@example.edu")
	facultyToken, _ := env.signup(t, models.RoleFaculty, "grace@example.edu")
	projectID := env.createProject(t, facultyToken, 3)

	status, _ := env.request(t, http.MethodPost, "/api/v1/applications", studentToken, dto.ApplicationCreateRequest{ProjectID: projectID})
	require.Equal(t, fiber.StatusCreated, status)

	adminToken := env.adminToken(t)
	status, response := env.request(t, http.MethodGet, "/api/v1/admin/summary", adminToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	var summary dto.AdminSummaryResponse
	require.NoError(t, json.Unmarshal(response.Data, &summary))
	require.Equal(t, int64(1), summary.Students)
	require.Equal(t, int64(1), summary.Faculty)
	require.Equal(t, int64(1), summary.Projects)
	require.Equal(t, int64(1), summary.PendingApplications)
}

func TestAdminDeleteStudent(t *testing.T) {
	env := newTestEnv(t)

	_, studentID := env.signup(t, models.RoleStudent, "ada@example.edu")
	adminToken := env.adminToken(t)

	path := fmt.Sprintf("/api/v1/admin/students/%d", studentID)
	status, _ := env.request(t, http.MethodDelete, path, adminToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = env.request(t, http.MethodDelete, path, adminToken, nil)
	require.Equal(t, fiber.StatusNotFound, status)
}

func TestAdminDeleteFacultyCascades(t *testing.T) {
	env := newTestEnv(t)

	studentToken, _ := env.signup(t, models.RoleStudent, "ada@example.edu")
	facultyToken, facultyID := env.signup(t, models.RoleFaculty, "grace@example.edu")
	projectID := env.createProject(t, facultyToken, 3)

	status, _ := env.request(t, http.MethodPost, "/api/v1/applications", studentToken, dto.ApplicationCreateRequest{ProjectID: projectID})
	require.Equal(t, fiber.StatusCreated, status)

	adminToken := env.adminToken(t)
	path := fmt.Sprintf("/api/v1/admin/faculty/%d", facultyID)
	status, _ = env.request(t, http.MethodDelete, path, adminToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	// The owned project disappeared with its applications.
	status, _ = env.request(t, http.MethodGet, fmt.Sprintf("/api/v1/projects/%d", projectID), studentToken, nil)
	require.Equal(t, fiber.StatusNotFound, status)

	status, response := env.request(t, http.MethodGet, "/api/v1/applications", studentToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	var applications []dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(response.Data, &applications))
	require.Empty(t, applications)
}
