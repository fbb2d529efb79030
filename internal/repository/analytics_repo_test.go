package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/skillbase/skillbase-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.LearningPath{},
		&models.CourseProgress{},
		&models.PathProgress{},
		&models.Certificate{},
		&models.TrainingEvent{},
		&models.EventRegistration{},
	))
	return db
}

func TestFetchActivityFiltersByDepartmentAndWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -7)

	alice := models.User{Name: "Alice", Email: "alice@example.com", Department: "Production"}
	carol := models.User{Name: "Carol", Email: "carol@example.com", Department: "Finance"}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&carol).Error)

	course := models.Course{Title: "Forklift Safety", Category: "Safety"}
	require.NoError(t, db.Create(&course).Error)

	inWindow := models.CourseProgress{UserID: alice.ID, CourseID: course.ID, Status: models.ProgressStatusCompleted, UpdatedAt: now.Add(-time.Hour)}
	stale := models.CourseProgress{UserID: alice.ID, CourseID: course.ID, Status: models.ProgressStatusCompleted, UpdatedAt: since.AddDate(0, 0, -30)}
	foreign := models.CourseProgress{UserID: carol.ID, CourseID: course.ID, Status: models.ProgressStatusCompleted, UpdatedAt: now.Add(-time.Hour)}
	require.NoError(t, db.Create(&inWindow).Error)
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Create(&foreign).Error)

	require.NoError(t, db.Create(&models.Certificate{UserID: carol.ID, CourseID: course.ID, IssuedAt: now.Add(-time.Hour)}).Error)

	department := "Production"
	snapshot, err := repo.FetchActivity(context.Background(), ActivityFilter{Department: &department, Since: since})
	require.NoError(t, err)

	require.Len(t, snapshot.Users, 1)
	require.Equal(t, "Alice", snapshot.Users[0].Name)
	require.Len(t, snapshot.CourseProgress, 1)
	require.Equal(t, inWindow.ID, snapshot.CourseProgress[0].ID)
	require.Empty(t, snapshot.Certificates, "certificates of other departments are excluded")
	require.Len(t, snapshot.Courses, 1, "definitions are not department-scoped")
}

func TestFetchActivityUnfiltered(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)

	now := time.Now().UTC()
	user := models.User{Name: "Dave", Email: "dave@example.com"}
	require.NoError(t, db.Create(&user).Error)

	event := models.TrainingEvent{Title: "Safety Day", StartsAt: now.AddDate(0, 0, 3)}
	require.NoError(t, db.Create(&event).Error)
	require.NoError(t, db.Create(&models.EventRegistration{UserID: user.ID, EventID: event.ID, CreatedAt: now.Add(-time.Hour)}).Error)

	snapshot, err := repo.FetchActivity(context.Background(), ActivityFilter{Since: now.AddDate(0, 0, -7)})
	require.NoError(t, err)
	require.Len(t, snapshot.Users, 1)
	require.Len(t, snapshot.EventRegistrations, 1)
}

func TestFetchActivityUnassignedSentinel(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnalyticsRepository(db)

	assigned := models.User{Name: "Alice", Email: "alice@example.com", Department: "Production"}
	unassigned := models.User{Name: "Dave", Email: "dave@example.com"}
	require.NoError(t, db.Create(&assigned).Error)
	require.NoError(t, db.Create(&unassigned).Error)

	department := models.DepartmentUnassigned
	snapshot, err := repo.FetchActivity(context.Background(), ActivityFilter{Department: &department, Since: time.Now().AddDate(0, 0, -7)})
	require.NoError(t, err)
	require.Len(t, snapshot.Users, 1)
	require.Equal(t, "Dave", snapshot.Users[0].Name)
}

func TestListDepartments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDepartmentRepository(db)

	require.NoError(t, db.Create(&models.User{Name: "Alice", Email: "alice@example.com", Department: "Production"}).Error)
	require.NoError(t, db.Create(&models.User{Name: "Bob", Email: "bob@example.com", Department: "Production"}).Error)
	require.NoError(t, db.Create(&models.User{Name: "Dave", Email: "dave@example.com"}).Error)

	departments, err := repo.ListDepartments(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Production", models.DepartmentUnassigned}, departments)
}
