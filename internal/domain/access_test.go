package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"misportal/internal/domain"
)

func TestAccessPredicates(t *testing.T) {
	deptID := uuid.New()

	admin := &domain.User{Role: domain.RoleAdmin}
	hod := &domain.User{Role: domain.RoleHOD, DepartmentID: &deptID}
	user := &domain.User{Role: domain.RoleUser, DepartmentID: &deptID}

	assert.True(t, admin.CanAdminister())
	assert.False(t, hod.CanAdminister())
	assert.False(t, user.CanAdminister())

	assert.True(t, admin.CanReview())
	assert.True(t, hod.CanReview())
	assert.False(t, user.CanReview())
}

func TestDepartmentScope(t *testing.T) {
	deptID := uuid.New()
	otherDept := uuid.New()

	admin := &domain.User{Role: domain.RoleAdmin}
	assert.Nil(t, admin.DepartmentScope())
	assert.True(t, admin.InScope(otherDept))

	for _, role := range []domain.UserRole{domain.RoleHOD, domain.RoleUser} {
		u := &domain.User{Role: role, DepartmentID: &deptID}
		scope := u.DepartmentScope()
		if assert.NotNil(t, scope) {
			assert.Equal(t, deptID, *scope)
		}
		assert.True(t, u.InScope(deptID))
		assert.False(t, u.InScope(otherDept))
	}

	orphan := &domain.User{Role: domain.RoleUser}
	assert.False(t, orphan.InScope(deptID))
}
