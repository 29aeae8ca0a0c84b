package domain

import "github.com/google/uuid"

// Access predicates are pure derivations from the stored role and
// department fields. Callers must re-load the user before every
// privileged operation; an inactive user is unauthenticated everywhere,
// so none of these predicates consult IsActive.

// CanAdminister reports whether the user may manage master data
// (companies, departments, financial years, users, templates).
func (u *User) CanAdminister() bool {
	return u.Role == RoleAdmin
}

// CanReview reports whether the user may approve or reject uploads.
func (u *User) CanReview() bool {
	return u.Role == RoleAdmin || u.Role == RoleHOD
}

// DepartmentScope returns the department the user is confined to, or nil
// when the user sees all departments. The same scope applies to listing,
// review, download, and delete; there is no separate "can view" rule.
func (u *User) DepartmentScope() *uuid.UUID {
	if u.Role == RoleAdmin {
		return nil
	}
	return u.DepartmentID
}

// InScope reports whether a department falls inside the user's scope.
// A non-admin without a department is in scope of nothing.
func (u *User) InScope(departmentID uuid.UUID) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.DepartmentID != nil && *u.DepartmentID == departmentID
}
