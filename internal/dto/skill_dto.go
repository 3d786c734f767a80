package dto

import "github.com/noah-isme/research-connect-api/internal/models"

// SkillCreateRequest adds a new capability tag to the catalogue.
type SkillCreateRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"omitempty,max=50"`
}

// SkillResponse is the public representation of a skill.
type SkillResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// NewSkillResponse converts a skill model into its response shape.
func NewSkillResponse(skill models.Skill) SkillResponse {
	return SkillResponse{
		ID:       skill.ID,
		Name:     skill.Name,
		Category: skill.Category,
	}
}

// NewSkillResponseSlice converts a slice of skill models.
func NewSkillResponseSlice(skills []models.Skill) []SkillResponse {
	result := make([]SkillResponse, 0, len(skills))
	for _, skill := range skills {
		result = append(result, NewSkillResponse(skill))
	}
	return result
}
