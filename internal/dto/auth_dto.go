package dto

import "time"

// SignupRequest captures a new student or faculty registration.
type SignupRequest struct {
	Role      string `json:"role" validate:"required,oneof=student faculty"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"required,min=8,max=72"`

	// Student profile fields, ignored for faculty signups.
	Major             string   `json:"major" validate:"omitempty,max=100"`
	GPA               *float64 `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	YearLevel         int      `json:"year_level" validate:"omitempty,gte=1,lte=8"`
	ResearchInterests string   `json:"research_interests"`

	// Faculty profile fields, ignored for student signups.
	Department    string `json:"department" validate:"omitempty,max=100"`
	ResearchAreas string `json:"research_areas"`
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=student faculty admin"`
}

// AuthResponse is returned after a successful login or signup.
type AuthResponse struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
