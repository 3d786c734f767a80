package models

import "time"

// Application statuses. Pending is the only non-terminal state.
const (
	ApplicationStatusPending   = "Pending"
	ApplicationStatusAccepted  = "Accepted"
	ApplicationStatusRejected  = "Rejected"
	ApplicationStatusWithdrawn = "Withdrawn"
)

// Application links one student to one project. The unique index on the
// (student_id, project_id) pair enforces the one-application-ever rule at the
// storage layer: a withdrawn or rejected row permanently blocks re-application.
type Application struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	StudentID   uint    `gorm:"not null;uniqueIndex:idx_applications_student_project" json:"student_id"`
	ProjectID   uint    `gorm:"not null;uniqueIndex:idx_applications_student_project" json:"project_id"`
	Status      string  `gorm:"size:50;not null;default:Pending" json:"status"`
	CoverLetter string  `gorm:"type:text" json:"cover_letter,omitempty"`
	Student     Student `json:"student,omitempty"`
	Project     Project `json:"project,omitempty"`

	CreatedAt time.Time `json:"applied_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPending reports whether the application can still be transitioned.
func (a Application) IsPending() bool {
	return a.Status == ApplicationStatusPending
}
