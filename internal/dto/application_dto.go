package dto

import (
	"time"

	"github.com/noah-isme/research-connect-api/internal/models"
)

// ApplicationCreateRequest submits a student's application to a project.
// The applying student is taken from the authenticated principal, never the body.
type ApplicationCreateRequest struct {
	ProjectID   uint   `json:"project_id" validate:"required,gt=0"`
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
}

// ApplicationResponse is the public representation of an application.
type ApplicationResponse struct {
	ID          uint             `json:"id"`
	StudentID   uint             `json:"student_id"`
	ProjectID   uint             `json:"project_id"`
	Status      string           `json:"status"`
	CoverLetter string           `json:"cover_letter,omitempty"`
	Student     *StudentResponse `json:"student,omitempty"`
	Project     *ProjectResponse `json:"project,omitempty"`
	AppliedAt   time.Time        `json:"applied_at"`
}

// NewApplicationResponse converts an application model into its response shape.
func NewApplicationResponse(application models.Application) ApplicationResponse {
	response := ApplicationResponse{
		ID:          application.ID,
		StudentID:   application.StudentID,
		ProjectID:   application.ProjectID,
		Status:      application.Status,
		CoverLetter: application.CoverLetter,
		AppliedAt:   application.CreatedAt,
	}
	if application.Student.ID != 0 {
		student := NewStudentResponse(application.Student)
		response.Student = &student
	}
	if application.Project.ID != 0 {
		project := NewProjectResponse(application.Project)
		response.Project = &project
	}
	return response
}

// NewApplicationResponseSlice converts a slice of application models.
func NewApplicationResponseSlice(applications []models.Application) []ApplicationResponse {
	result := make([]ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		result = append(result, NewApplicationResponse(application))
	}
	return result
}
