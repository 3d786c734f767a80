package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/research-connect-api/internal/models"
)

func TestApplicationRepositoryUniquePairBlocksReapplication(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)

	seedPair(t, db)

	first := models.Application{StudentID: 1, ProjectID: 1, Status: models.ApplicationStatusWithdrawn}
	require.NoError(t, repo.Create(context.Background(), &first))

	second := models.Application{StudentID: 1, ProjectID: 1, Status: models.ApplicationStatusPending}
	err := repo.Create(context.Background(), &second)
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey, "a withdrawn application must still block re-application")
}

func TestApplicationRepositoryTransitionPersistsStatusAndRoster(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)

	seedPair(t, db)

	application := models.Application{StudentID: 1, ProjectID: 1, Status: models.ApplicationStatusPending}
	require.NoError(t, repo.Create(context.Background(), &application))

	updated, err := repo.Transition(context.Background(), application.ID, func(store TransitionStore, application *models.Application) error {
		if err := store.AddMember(application.ProjectID, application.StudentID); err != nil {
			return err
		}
		application.Status = models.ApplicationStatusAccepted
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, models.ApplicationStatusAccepted, updated.Status)
	require.Equal(t, uint(1), updated.Project.ID, "transition should load the project association")

	var stored models.Application
	require.NoError(t, db.First(&stored, application.ID).Error)
	require.Equal(t, models.ApplicationStatusAccepted, stored.Status)

	var members int64
	require.NoError(t, db.Model(&models.ProjectMember{}).Count(&members).Error)
	require.Equal(t, int64(1), members)
}

func TestApplicationRepositoryTransitionRollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)

	seedPair(t, db)

	application := models.Application{StudentID: 1, ProjectID: 1, Status: models.ApplicationStatusPending}
	require.NoError(t, repo.Create(context.Background(), &application))

	boom := errors.New("refused")
	_, err := repo.Transition(context.Background(), application.ID, func(store TransitionStore, application *models.Application) error {
		if err := store.AddMember(application.ProjectID, application.StudentID); err != nil {
			return err
		}
		application.Status = models.ApplicationStatusAccepted
		return boom
	})
	require.ErrorIs(t, err, boom)

	var stored models.Application
	require.NoError(t, db.First(&stored, application.ID).Error)
	require.Equal(t, models.ApplicationStatusPending, stored.Status, "failed transition must not change status")

	var members int64
	require.NoError(t, db.Model(&models.ProjectMember{}).Count(&members).Error)
	require.Zero(t, members, "roster insert must roll back with the transition")
}

func TestApplicationRepositoryTransitionMissingRecord(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)

	_, err := repo.Transition(context.Background(), 99, func(TransitionStore, *models.Application) error {
		return nil
	})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestApplicationRepositoryHasForPair(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)

	seedPair(t, db)

	exists, err := repo.HasForPair(context.Background(), 1, 1)
	require.NoError(t, err)
	require.False(t, exists)

	application := models.Application{StudentID: 1, ProjectID: 1, Status: models.ApplicationStatusRejected}
	require.NoError(t, repo.Create(context.Background(), &application))

	exists, err = repo.HasForPair(context.Background(), 1, 1)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestApplicationRepositoryListByProject(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)

	seedPair(t, db)
	other := models.Student{FirstName: "Bea", LastName: "Ng", Email: "bea@example.edu", Password: "x"}
	require.NoError(t, db.Create(&other).Error)

	require.NoError(t, repo.Create(context.Background(), &models.Application{StudentID: 1, ProjectID: 1}))
	require.NoError(t, repo.Create(context.Background(), &models.Application{StudentID: other.ID, ProjectID: 1}))

	applications, err := repo.ListByProject(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, applications, 2)
	for _, application := range applications {
		require.NotZero(t, application.Student.ID, "project listing should preload the student")
	}

	mine, err := repo.ListByStudent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotZero(t, mine[0].Project.ID, "student listing should preload the project")
}

// seedPair inserts one student (id 1), one faculty (id 1) and one recruiting
// project (id 1) owned by that faculty.
func seedPair(t *testing.T, db *gorm.DB) {
	t.Helper()

	student := models.Student{FirstName: "Ada", LastName: "Park", Email: "ada@example.edu", Password: "x"}
	require.NoError(t, db.Create(&student).Error)

	faculty := models.Faculty{FirstName: "Grace", LastName: "Liu", Email: "grace@example.edu", Password: "x", Department: "CS"}
	require.NoError(t, db.Create(&faculty).Error)

	project := models.Project{
		Title:       "Graph Mining",
		Description: "Mining large graphs",
		Status:      models.ProjectStatusRecruiting,
		MaxStudents: 3,
		FacultyID:   faculty.ID,
	}
	require.NoError(t, db.Create(&project).Error)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Student{},
		&models.Faculty{},
		&models.Admin{},
		&models.Skill{},
		&models.Project{},
		&models.ProjectMember{},
		&models.Application{},
	))
	return db
}
