package dto

import (
	"time"

	"github.com/noah-isme/research-connect-api/internal/models"
)

// StudentUpdateRequest mutates a student's own profile. Nil fields are left untouched.
type StudentUpdateRequest struct {
	FirstName         *string  `json:"first_name" validate:"omitempty,max=50"`
	LastName          *string  `json:"last_name" validate:"omitempty,max=50"`
	Major             *string  `json:"major" validate:"omitempty,max=100"`
	GPA               *float64 `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	YearLevel         *int     `json:"year_level" validate:"omitempty,gte=1,lte=8"`
	ResearchInterests *string  `json:"research_interests"`
}

// StudentSkillsRequest replaces the student's possessed skill set.
type StudentSkillsRequest struct {
	SkillIDs []uint `json:"skill_ids" validate:"required,dive,gt=0"`
}

// StudentResponse is the public representation of a student.
type StudentResponse struct {
	ID                uint            `json:"id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Email             string          `json:"email"`
	Major             string          `json:"major,omitempty"`
	GPA               *float64        `json:"gpa,omitempty"`
	YearLevel         int             `json:"year_level,omitempty"`
	ResearchInterests string          `json:"research_interests,omitempty"`
	Skills            []SkillResponse `json:"skills,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// NewStudentResponse converts a student model into its response shape.
func NewStudentResponse(student models.Student) StudentResponse {
	response := StudentResponse{
		ID:                student.ID,
		FirstName:         student.FirstName,
		LastName:          student.LastName,
		Email:             student.Email,
		Major:             student.Major,
		GPA:               student.GPA,
		YearLevel:         student.YearLevel,
		ResearchInterests: student.ResearchInterests,
		CreatedAt:         student.CreatedAt,
	}
	if len(student.Skills) > 0 {
		response.Skills = NewSkillResponseSlice(student.Skills)
	}
	return response
}

// NewStudentResponseSlice converts a slice of student models.
func NewStudentResponseSlice(students []models.Student) []StudentResponse {
	result := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		result = append(result, NewStudentResponse(student))
	}
	return result
}
