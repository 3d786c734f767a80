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

func TestProjectCreateRequiresFacultyRole(t *testing.T) {
	env := newTestEnv(t)

	studentToken, _ := env.signup(t, models.RoleStudent, "ada@example.edu")
	status, _ := env.request(t, http.MethodPost, "/api/v1/projects", studentToken, dto.ProjectCreateRequest{
		Title:       "Graph Mining",
		Description: "d",
		MaxStudents: 3,
	})
	require.Equal(t, fiber.StatusForbidden, status)
}

func TestProjectListAndStatusFilter(t *testing.T) {
	env := newTestEnv(t)

	facultyToken, _ := env.signup(t, models.RoleFaculty, "grace@example.edu")
	first := env.createProject(t, facultyToken, 3)
	second := env.createProject(t, facultyToken, 3)

	// Close the second posting.
	path := fmt.Sprintf("/api/v1/projects/%d/status", second)
	status, _ := env.request(t, http.MethodPatch, path, facultyToken, dto.ProjectStatusUpdateRequest{Status: models.ProjectStatusCompleted})
	require.Equal(t, fiber.StatusOK, status)

	status, response := env.request(t, http.MethodGet, "/api/v1/projects?status=Recruiting", facultyToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	var projects []dto.ProjectResponse
	require.NoError(t, json.Unmarshal(response.Data, &projects))
	require.Len(t, projects, 1)
	require.Equal(t, first, projects[0].ID)

	status, _ = env.request(t, http.MethodGet, "/api/v1/projects?status=Paused", facultyToken, nil)
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestProjectStatusUpdateOwnerOnly(t *testing.T) {
	env := newTestEnv(t)

	ownerToken, _ := env.signup(t, models.RoleFaculty, "grace@example.edu")
	intruderToken, _ := env.signup(t, models.RoleFaculty, "omar@example.edu")
	projectID := env.createProject(t, ownerToken, 3)

	path := fmt.Sprintf("/api/v1/projects/%d/status", projectID)
	status, _ := env.request(t, http.MethodPatch, path, intruderToken, dto.ProjectStatusUpdateRequest{Status: models.ProjectStatusCompleted})
	require.Equal(t, fiber.StatusForbidden, status)
}

func TestProjectDeleteRequiresAdmin(t *testing.T) {
	env := newTestEnv(t)

	facultyToken, _ := env.signup(t, models.RoleFaculty, "grace@example.edu")
	projectID := env.createProject(t, facultyToken, 3)

	path := fmt.Sprintf("/api/v1/projects/%d", projectID)
	status, _ := env.request(t, http.MethodDelete, path, facultyToken, nil)
	require.Equal(t, fiber.StatusForbidden, status, "even the owner may not delete a posting")

	adminToken := env.adminToken(t)
	status, _ = env.request(t, http.MethodDelete, path, adminToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = env.request(t, http.MethodGet, path, facultyToken, nil)
	require.Equal(t, fiber.StatusNotFound, status)
}
