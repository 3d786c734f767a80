package service

import "errors"

// Sentinel errors surfaced to handlers for status-code mapping.
var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrFacultyNotFound     = errors.New("faculty not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrSkillNotFound       = errors.New("skill not found")

	ErrEmailTaken         = errors.New("email already registered")
	ErrSkillExists        = errors.New("skill already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrForbidden       = errors.New("forbidden")
	ErrNotProjectOwner = errors.New("caller does not own this project")
	ErrNotApplicant    = errors.New("caller is not the applying student")

	ErrApplicationNotPending = errors.New("application is not pending")
	ErrDuplicateApplication  = errors.New("an application for this project already exists")
	ErrProjectNotRecruiting  = errors.New("project is not recruiting")
	ErrProjectFull           = errors.New("project has reached its student capacity")
	ErrInvalidProjectStatus  = errors.New("invalid project status")
)

// Principal identifies the authenticated actor for authorization decisions.
// It is always passed explicitly into operations, never read from globals.
type Principal struct {
	ID   uint
	Role string
}
