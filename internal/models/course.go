package models

import "time"

// CategoryUncategorized is the label applied to course and path definitions
// without a category.
const CategoryUncategorized = "Uncategorized"

// Course represents a training course definition.
type Course struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Category  string    `gorm:"size:128;index" json:"category"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryLabel returns the course category, substituting the sentinel when empty.
func (c Course) CategoryLabel() string {
	if c.Category == "" {
		return CategoryUncategorized
	}
	return c.Category
}

// LearningPath represents an ordered collection of courses treated as a single
// training track.
type LearningPath struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Category  string    `gorm:"size:128;index" json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryLabel returns the path category, substituting the sentinel when empty.
func (p LearningPath) CategoryLabel() string {
	if p.Category == "" {
		return CategoryUncategorized
	}
	return p.Category
}
