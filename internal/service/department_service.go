package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skillbase/skillbase-api/internal/dto"
	"github.com/skillbase/skillbase-api/internal/repository"
)

// DepartmentService serves the department labels dashboards filter by.
type DepartmentService interface {
	ListDepartments(ctx context.Context, principal Principal) (dto.DepartmentListResponse, error)
}

type departmentService struct {
	repo   repository.DepartmentRepository
	logger zerolog.Logger
}

// NewDepartmentService constructs the department service.
func NewDepartmentService(repo repository.DepartmentRepository, logger zerolog.Logger) DepartmentService {
	return &departmentService{
		repo:   repo,
		logger: logger.With().Str("component", "department_service").Logger(),
	}
}

func (s *departmentService) ListDepartments(ctx context.Context, principal Principal) (dto.DepartmentListResponse, error) {
	if err := authorize(principal); err != nil {
		return dto.DepartmentListResponse{}, err
	}

	// A department-pinned manager only ever sees their own department.
	if scoped := scopedDepartment(principal, ""); scoped != nil {
		return dto.DepartmentListResponse{Departments: []string{*scoped}}, nil
	}

	departments, err := s.repo.ListDepartments(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("department listing failed")
		return dto.DepartmentListResponse{}, ErrDataUnavailable
	}

	return dto.DepartmentListResponse{Departments: departments}, nil
}
