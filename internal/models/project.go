package models

import "time"

// Project statuses. Only Recruiting projects accept new applications.
const (
	ProjectStatusRecruiting = "Recruiting"
	ProjectStatusInProgress = "InProgress"
	ProjectStatusCompleted  = "Completed"
	ProjectStatusCancelled  = "Cancelled"
)

// ValidProjectStatus reports whether the supplied value is a known project status.
func ValidProjectStatus(status string) bool {
	switch status {
	case ProjectStatusRecruiting, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

// Project is a research posting owned by exactly one faculty member.
// Ownership is fixed at creation and never transferred.
type Project struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:200;not null" json:"title"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Status      string  `gorm:"size:50;not null;default:Recruiting" json:"status"`
	MaxStudents int     `gorm:"not null" json:"max_students"`
	FacultyID   uint    `gorm:"not null;index" json:"faculty_id"`
	Faculty     Faculty `json:"faculty,omitempty"`
	Skills      []Skill `gorm:"many2many:project_skills" json:"skills,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsRecruiting reports whether the project accepts new applications.
func (p Project) IsRecruiting() bool {
	return p.Status == ProjectStatusRecruiting
}

// ProjectMember is the roster row linking an accepted student to a project.
// Rows are only ever created as the side effect of approving an application.
type ProjectMember struct {
	ProjectID uint      `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	StudentID uint      `gorm:"primaryKey;autoIncrement:false" json:"student_id"`
	JoinedAt  time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

// TableName keeps the conventional junction table name.
func (ProjectMember) TableName() string {
	return "project_members"
}
