package models

import "time"

// Account roles recognised by the platform.
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
)

// Student represents a learner that can browse and apply to research projects.
type Student struct {
	ID                uint     `gorm:"primaryKey" json:"id"`
	FirstName         string   `gorm:"size:50;not null" json:"first_name"`
	LastName          string   `gorm:"size:50;not null" json:"last_name"`
	Email             string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password          string   `gorm:"size:255;not null" json:"-"`
	Major             string   `gorm:"size:100" json:"major"`
	GPA               *float64 `gorm:"type:decimal(3,2)" json:"gpa,omitempty"`
	YearLevel         int      `json:"year_level"`
	ResearchInterests string   `gorm:"type:text" json:"research_interests"`
	Skills            []Skill  `gorm:"many2many:student_skills" json:"skills,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins the first and last name for display purposes.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Faculty represents an instructor who owns research project postings.
type Faculty struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FirstName     string    `gorm:"size:50;not null" json:"first_name"`
	LastName      string    `gorm:"size:50;not null" json:"last_name"`
	Email         string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"size:255;not null" json:"-"`
	Department    string    `gorm:"size:100" json:"department"`
	ResearchAreas string    `gorm:"type:text" json:"research_areas"`
	Projects      []Project `gorm:"foreignKey:FacultyID" json:"projects,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name so gorm does not pluralise to "faculties".
func (Faculty) TableName() string {
	return "faculty"
}

// FullName joins the first and last name for display purposes.
func (f Faculty) FullName() string {
	return f.FirstName + " " + f.LastName
}

// Admin represents a platform administrator. Admin credentials are verified
// the same way as every other role.
type Admin struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins the first and last name for display purposes.
func (a Admin) FullName() string {
	return a.FirstName + " " + a.LastName
}
