package models

import "time"

// TrainingEvent represents a scheduled live training session or workshop.
type TrainingEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Location  string    `gorm:"size:255" json:"location"`
	StartsAt  time.Time `gorm:"not null" json:"starts_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventRegistration records a user signing up for a training event.
type EventRegistration struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	EventID   uint          `gorm:"not null;index" json:"event_id"`
	CreatedAt time.Time     `gorm:"index" json:"created_at"`
	User      User          `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Event     TrainingEvent `gorm:"foreignKey:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
