package repository

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/skillbase/skillbase-api/internal/models"
)

// DepartmentRepository lists the department labels present in the user population.
type DepartmentRepository interface {
	ListDepartments(ctx context.Context) ([]string, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository constructs the department repository.
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) ListDepartments(ctx context.Context) ([]string, error) {
	var raw []string
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Distinct("department").
		Pluck("department", &raw).Error
	if err != nil {
		return nil, err
	}

	departments := make([]string, 0, len(raw))
	seen := map[string]struct{}{}
	for _, label := range raw {
		if label == "" {
			label = models.DepartmentUnassigned
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		departments = append(departments, label)
	}
	sort.Strings(departments)

	return departments, nil
}
