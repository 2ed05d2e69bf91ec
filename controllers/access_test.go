package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beautyplaza/beautyplaza-api/models"
)

func TestCanReadUser(t *testing.T) {
	assert.True(t, canReadUser(models.RoleAdmin, "admin-1", "cust-1"))
	assert.True(t, canReadUser(models.RoleCustomer, "cust-1", "cust-1"))
	assert.True(t, canReadUser(models.RoleTechnician, "tech-1", "tech-1"))

	// Non-admins cannot read other accounts
	assert.False(t, canReadUser(models.RoleCustomer, "cust-1", "cust-2"))
	assert.False(t, canReadUser(models.RoleTechnician, "tech-1", "cust-1"))
}

func TestCanManageTechnician(t *testing.T) {
	ownerID := "tech-user-1"
	linked := &models.Technician{ID: 1, UserID: &ownerID}
	unlinked := &models.Technician{ID: 2}

	assert.True(t, canManageTechnician(models.RoleAdmin, "admin-1", linked))
	assert.True(t, canManageTechnician(models.RoleAdmin, "admin-1", unlinked))
	assert.True(t, canManageTechnician(models.RoleTechnician, ownerID, linked))

	// A technician cannot touch someone else's roster entry
	assert.False(t, canManageTechnician(models.RoleTechnician, "tech-user-2", linked))
	// Or one with no linked account at all
	assert.False(t, canManageTechnician(models.RoleTechnician, ownerID, unlinked))
}
