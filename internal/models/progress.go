package models

import "time"

// Progress status values shared by course and path progress records.
const (
	// ProgressStatusNotStarted indicates the user is enrolled but has not begun.
	ProgressStatusNotStarted = "not_started"
	// ProgressStatusInProgress indicates the user has started but not finished.
	ProgressStatusInProgress = "in_progress"
	// ProgressStatusCompleted indicates the user has finished the course or path.
	ProgressStatusCompleted = "completed"
)

// CourseProgress tracks a user's progress through a single course.
type CourseProgress struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	Status    string    `gorm:"size:32;not null;default:not_started" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Course    Course    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// IsCompleted reports whether the course has been finished.
func (p CourseProgress) IsCompleted() bool {
	return p.Status == ProgressStatusCompleted
}

// PathProgress tracks a user's progress through a learning path.
type PathProgress struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;index" json:"user_id"`
	PathID    uint         `gorm:"not null;index" json:"path_id"`
	Status    string       `gorm:"size:32;not null;default:not_started" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `gorm:"index" json:"updated_at"`
	User      User         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Path      LearningPath `gorm:"foreignKey:PathID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// IsCompleted reports whether the path has been finished.
func (p PathProgress) IsCompleted() bool {
	return p.Status == ProgressStatusCompleted
}
