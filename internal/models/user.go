package models

import "time"

// DepartmentUnassigned is the canonical label applied to users without a department.
// Dashboards may special-case it, so it is exported rather than inlined.
const DepartmentUnassigned = "Unassigned"

// User represents an employee enrolled in the training portal.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Department string    `gorm:"size:128;index" json:"department"`
	Role       string    `gorm:"size:32;not null;default:employee" json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DepartmentLabel returns the user's department, substituting the canonical
// sentinel when none is assigned.
func (u User) DepartmentLabel() string {
	if u.Department == "" {
		return DepartmentUnassigned
	}
	return u.Department
}
