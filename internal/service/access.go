package service

import "strings"

// Roles granted access to aggregate analytics.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// Principal identifies the authenticated caller of an analytics request.
type Principal struct {
	UserID     uint
	Role       string
	Department string
}

// authorize is the access guard: a pure predicate over the caller's claims,
// evaluated before any store round-trip.
func authorize(p Principal) error {
	role := strings.ToLower(strings.TrimSpace(p.Role))
	if role == "" {
		return ErrUnauthenticated
	}

	switch role {
	case RoleAdmin, RoleManager:
		return nil
	default:
		return ErrForbidden
	}
}

// scopedDepartment resolves the effective department filter. Managers with a
// department claim are pinned to their own department; the requested filter is
// ignored for them. Admins and department-less managers keep the requested
// filter, or none.
func scopedDepartment(p Principal, requested string) *string {
	role := strings.ToLower(strings.TrimSpace(p.Role))
	if role == RoleManager && p.Department != "" {
		department := p.Department
		return &department
	}

	requested = strings.TrimSpace(requested)
	if requested == "" {
		return nil
	}
	return &requested
}
