package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beautyplaza/beautyplaza-api/models"
)

func TestAdminPassesEverything(t *testing.T) {
	admin := Principal{ID: "u1", Role: models.RoleAdmin}

	assert.True(t, DefaultPolicy(admin, "delete", "users"))
	assert.True(t, DefaultPolicy(admin, "create", "gift-cards"))
	assert.True(t, DefaultPolicy(admin, "anything", "nonexistent"))
}

func TestCustomerPermissions(t *testing.T) {
	customer := Principal{ID: "u2", Role: models.RoleCustomer}

	assert.True(t, DefaultPolicy(customer, "create", "appointments"))
	assert.True(t, DefaultPolicy(customer, "verify-otp", "appointments"))
	assert.True(t, DefaultPolicy(customer, "redeem", "gift-cards"))
	assert.True(t, DefaultPolicy(customer, "apply", "promotions"))

	assert.False(t, DefaultPolicy(customer, "delete", "appointments"))
	assert.False(t, DefaultPolicy(customer, "status", "appointments"))
	assert.False(t, DefaultPolicy(customer, "create", "services"))
	assert.False(t, DefaultPolicy(customer, "list", "users"))
	assert.False(t, DefaultPolicy(customer, "read", "settings"))
}

func TestTechnicianPermissions(t *testing.T) {
	technician := Principal{ID: "u3", Role: models.RoleTechnician}

	assert.True(t, DefaultPolicy(technician, "read", "appointments"))
	assert.True(t, DefaultPolicy(technician, "status", "appointments"))
	assert.True(t, DefaultPolicy(technician, "update", "technicians"))

	assert.False(t, DefaultPolicy(technician, "create", "appointments"))
	assert.False(t, DefaultPolicy(technician, "create", "technicians"))
	assert.False(t, DefaultPolicy(technician, "create", "loyalty-points"))
}

func TestUnknownResourceDeniesNonAdmin(t *testing.T) {
	customer := Principal{ID: "u2", Role: models.RoleCustomer}
	assert.False(t, DefaultPolicy(customer, "read", "nonexistent"))
}
