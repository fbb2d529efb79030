package models

import "time"

// Certificate records a completion certificate issued to a user for a course.
// Uniqueness per (user, course) is enforced upstream; aggregation still counts
// every row as one unit so duplicates cannot corrupt totals.
type Certificate struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	CourseID  uint      `gorm:"not null;index" json:"course_id"`
	IssuedAt  time.Time `gorm:"not null;index" json:"issued_at"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Course    Course    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
