package dto

import (
	"time"

	"github.com/noah-isme/research-connect-api/internal/models"
)

// ProjectCreateRequest opens a new research posting. Status is always forced
// to Recruiting server side.
type ProjectCreateRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	MaxStudents int    `json:"max_students" validate:"required,gte=1,lte=20"`
	SkillIDs    []uint `json:"skill_ids" validate:"omitempty,dive,gt=0"`
}

// ProjectStatusUpdateRequest changes the posting status.
type ProjectStatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	Status    *string `validate:"omitempty"`
	FacultyID *uint   `validate:"omitempty,gt=0"`
}

// ProjectResponse is the public representation of a research posting.
type ProjectResponse struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	MaxStudents int              `json:"max_students"`
	FacultyID   uint             `json:"faculty_id"`
	Faculty     *FacultyResponse `json:"faculty,omitempty"`
	Skills      []SkillResponse  `json:"skills,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewProjectResponse converts a project model into its response shape.
func NewProjectResponse(project models.Project) ProjectResponse {
	response := ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Status:      project.Status,
		MaxStudents: project.MaxStudents,
		FacultyID:   project.FacultyID,
		CreatedAt:   project.CreatedAt,
	}
	if project.Faculty.ID != 0 {
		faculty := NewFacultyResponse(project.Faculty)
		response.Faculty = &faculty
	}
	if len(project.Skills) > 0 {
		response.Skills = NewSkillResponseSlice(project.Skills)
	}
	return response
}

// NewProjectResponseSlice converts a slice of project models.
func NewProjectResponseSlice(projects []models.Project) []ProjectResponse {
	result := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		result = append(result, NewProjectResponse(project))
	}
	return result
}
