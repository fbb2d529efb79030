package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/skillbase/skillbase-api/internal/models"
)

// ActivityFilter narrows the fetched population and activity records.
// Department, when set, scopes every collection to users of that department.
// Since excludes records whose relevant timestamp predates the window start.
type ActivityFilter struct {
	Department *string
	Since      time.Time
}

// ActivitySnapshot bundles everything the aggregation engine consumes for one
// request: the user population under filter, the four window-filtered activity
// collections, and the course/path definitions.
type ActivitySnapshot struct {
	Users              []models.User
	CourseProgress     []models.CourseProgress
	PathProgress       []models.PathProgress
	Certificates       []models.Certificate
	EventRegistrations []models.EventRegistration
	Courses            []models.Course
	Paths              []models.LearningPath
}

// AnalyticsRepository supplies raw training activity for the aggregation engine.
type AnalyticsRepository interface {
	FetchActivity(ctx context.Context, filter ActivityFilter) (ActivitySnapshot, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository constructs the analytics repository.
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) FetchActivity(ctx context.Context, filter ActivityFilter) (ActivitySnapshot, error) {
	snapshot := ActivitySnapshot{}
	db := r.db.WithContext(ctx)

	users := db.Model(&models.User{})
	if filter.Department != nil {
		users = users.Where("department = ?", departmentValue(*filter.Department))
	}
	if err := users.Find(&snapshot.Users).Error; err != nil {
		return ActivitySnapshot{}, err
	}

	courseProgress := db.Model(&models.CourseProgress{}).
		Where("course_progresses.updated_at >= ?", filter.Since)
	if err := scopeToDepartment(courseProgress, "course_progresses", filter).
		Find(&snapshot.CourseProgress).Error; err != nil {
		return ActivitySnapshot{}, err
	}

	pathProgress := db.Model(&models.PathProgress{}).
		Where("path_progresses.updated_at >= ?", filter.Since)
	if err := scopeToDepartment(pathProgress, "path_progresses", filter).
		Find(&snapshot.PathProgress).Error; err != nil {
		return ActivitySnapshot{}, err
	}

	certificates := db.Model(&models.Certificate{}).
		Where("certificates.issued_at >= ?", filter.Since)
	if err := scopeToDepartment(certificates, "certificates", filter).
		Find(&snapshot.Certificates).Error; err != nil {
		return ActivitySnapshot{}, err
	}

	registrations := db.Model(&models.EventRegistration{}).
		Where("event_registrations.created_at >= ?", filter.Since)
	if err := scopeToDepartment(registrations, "event_registrations", filter).
		Find(&snapshot.EventRegistrations).Error; err != nil {
		return ActivitySnapshot{}, err
	}

	if err := db.Find(&snapshot.Courses).Error; err != nil {
		return ActivitySnapshot{}, err
	}
	if err := db.Find(&snapshot.Paths).Error; err != nil {
		return ActivitySnapshot{}, err
	}

	return snapshot, nil
}

// scopeToDepartment joins an activity table to its owning user so department
// filtering applies to the user, not the record.
func scopeToDepartment(query *gorm.DB, table string, filter ActivityFilter) *gorm.DB {
	if filter.Department == nil {
		return query
	}

	return query.
		Joins("JOIN users ON users.id = "+table+".user_id").
		Where("users.department = ?", departmentValue(*filter.Department))
}

// departmentValue maps the exported sentinel back to the empty column value.
func departmentValue(department string) string {
	if department == models.DepartmentUnassigned {
		return ""
	}
	return department
}
