package serverutils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"devagency-be/internal/entity"
)

func TestPermissionsForAdmin(t *testing.T) {
	p := PermissionsFor(entity.UserRoleAdmin)
	assert.True(t, p.CanManageUsers)
	assert.True(t, p.CanReviewSubscriptions)
	assert.True(t, p.CanManageContent)
	assert.True(t, p.CanViewStats)
}

func TestPermissionsForCoadmin(t *testing.T) {
	p := PermissionsFor(entity.UserRoleCoadmin)
	assert.False(t, p.CanManageUsers, "coadmin must not manage user roles")
	assert.True(t, p.CanReviewSubscriptions)
	assert.True(t, p.CanManageContent)
	assert.True(t, p.CanViewStats)
}

func TestPermissionsForUser(t *testing.T) {
	p := PermissionsFor(entity.UserRoleUser)
	assert.Equal(t, Permissions{}, p)
}
