package dto

import (
	"time"

	"github.com/noah-isme/research-connect-api/internal/models"
)

// FacultyUpdateRequest mutates a faculty member's own profile. Nil fields are left untouched.
type FacultyUpdateRequest struct {
	FirstName     *string `json:"first_name" validate:"omitempty,max=50"`
	LastName      *string `json:"last_name" validate:"omitempty,max=50"`
	Department    *string `json:"department" validate:"omitempty,max=100"`
	ResearchAreas *string `json:"research_areas"`
}

// FacultyResponse is the public representation of a faculty member.
type FacultyResponse struct {
	ID            uint      `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Department    string    `json:"department,omitempty"`
	ResearchAreas string    `json:"research_areas,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewFacultyResponse converts a faculty model into its response shape.
func NewFacultyResponse(faculty models.Faculty) FacultyResponse {
	return FacultyResponse{
		ID:            faculty.ID,
		FirstName:     faculty.FirstName,
		LastName:      faculty.LastName,
		Email:         faculty.Email,
		Department:    faculty.Department,
		ResearchAreas: faculty.ResearchAreas,
		CreatedAt:     faculty.CreatedAt,
	}
}

// NewFacultyResponseSlice converts a slice of faculty models.
func NewFacultyResponseSlice(faculty []models.Faculty) []FacultyResponse {
	result := make([]FacultyResponse, 0, len(faculty))
	for _, member := range faculty {
		result = append(result, NewFacultyResponse(member))
	}
	return result
}
