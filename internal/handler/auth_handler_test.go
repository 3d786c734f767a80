package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/research-connect-api/internal/dto"
	"github.com/noah-isme/research-connect-api/internal/models"
)

func TestAuthHandlerSignupAndLogin(t *testing.T) {
	env := newTestEnv(t)

	token, userID := env.signup(t, models.RoleStudent, "ada@example.edu")
	require.NotEmpty(t, token)
	require.NotZero(t, userID)

	status, response := env.request(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "ada@example.edu",
		Password: "super-secret-pw",
		Role:     models.RoleStudent,
	})
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, response.Success)

	var auth dto.AuthResponse
	require.NoError(t, json.Unmarshal(response.Data, &auth))
	require.Equal(t, userID, auth.UserID)
	require.Equal(t, models.RoleStudent, auth.Role)
}

func TestAuthHandlerSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	env.signup(t, models.RoleStudent, "ada@example.edu")

	status, response := env.request(t, http.MethodPost, "/api/v1/auth/signup", "", dto.SignupRequest{
		Role:      models.RoleStudent,
		FirstName: "Ada",
		LastName:  "Park",
		Email:     "ada@example.edu",
		Password:  "super-secret-pw",
	})
	require.Equal(t, fiber.StatusConflict, status)
	require.False(t, response.Success)
}

func TestAuthHandlerLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	env.signup(t, models.RoleStudent, "ada@example.edu")

	status, _ := env.request(t, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "ada@example.edu",
		Password: "not-the-password",
		Role:     models.RoleStudent,
	})
	require.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAuthHandlerSignupValidation(t *testing.T) {
	env := newTestEnv(t)

	status, _ := env.request(t, http.MethodPost, "/api/v1/auth/signup", "", dto.SignupRequest{
		Role:      models.RoleStudent,
		FirstName: "Ada",
		LastName:  "Park",
		Email:     "not-an-email",
		Password:  "short",
	})
	require.Equal(t, fiber.StatusBadRequest, status)
}
