package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/noah-isme/research-connect-api/internal/models"
)

func TestFacultyRepositoryDeleteCascadesOwnedProjects(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFacultyRepository(db)

	seedPair(t, db)
	skill := models.Skill{Name: "Go", Category: "Programming"}
	require.NoError(t, db.Create(&skill).Error)
	require.NoError(t, db.Model(&models.Project{ID: 1}).Association("Skills").Append(&skill))
	require.NoError(t, db.Create(&models.Application{StudentID: 1, ProjectID: 1}).Error)
	require.NoError(t, db.Create(&models.ProjectMember{ProjectID: 1, StudentID: 1}).Error)

	require.NoError(t, repo.Delete(context.Background(), 1))

	var faculty, projects, applications, members int64
	require.NoError(t, db.Model(&models.Faculty{}).Count(&faculty).Error)
	require.NoError(t, db.Model(&models.Project{}).Count(&projects).Error)
	require.NoError(t, db.Model(&models.Application{}).Count(&applications).Error)
	require.NoError(t, db.Model(&models.ProjectMember{}).Count(&members).Error)
	require.Zero(t, faculty)
	require.Zero(t, projects)
	require.Zero(t, applications)
	require.Zero(t, members)

	var students int64
	require.NoError(t, db.Model(&models.Student{}).Count(&students).Error)
	require.Equal(t, int64(1), students, "student accounts must survive faculty deletion")
}

func TestFacultyRepositoryDeleteMissingFaculty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFacultyRepository(db)

	err := repo.Delete(context.Background(), 5)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
