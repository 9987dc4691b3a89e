package services

import (
	"testing"

	"github.com/rochiyat/mutabaah-app/models"

	"github.com/stretchr/testify/assert"
)

func TestIsOwner(t *testing.T) {
	owner := uint(7)
	assert.True(t, IsOwner(7, &owner))
	assert.False(t, IsOwner(8, &owner))
	assert.False(t, IsOwner(7, nil), "group-level activities have no personal owner")
}

func TestGroupPredicates(t *testing.T) {
	group := &models.Group{
		AdminID: 1,
		Members: []models.User{{ID: 2}, {ID: 3}},
	}

	assert.True(t, IsGroupAdmin(1, group))
	assert.False(t, IsGroupAdmin(2, group))

	assert.True(t, IsGroupMember(2, group))
	assert.True(t, IsGroupMember(3, group))
	assert.False(t, IsGroupMember(1, group), "admin is not implicitly a member")

	assert.True(t, IsSuperadmin(models.RoleSuperadmin))
	assert.False(t, IsSuperadmin(models.RoleUser))

	assert.True(t, CanViewGroup(1, models.RoleUser, group))
	assert.True(t, CanViewGroup(2, models.RoleUser, group))
	assert.True(t, CanViewGroup(99, models.RoleSuperadmin, group))
	assert.False(t, CanViewGroup(99, models.RoleUser, group))
}
