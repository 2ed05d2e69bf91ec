package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/models"
)

// Principal is the authenticated caller as seen by the policy.
type Principal struct {
	ID    string
	Email string
	Role  models.Role
}

// Policy decides whether a principal may perform an action on a resource.
// Ownership rules (a customer reading their own appointments) are narrower
// than role checks and stay in the handlers.
type Policy func(p Principal, action, resource string) bool

// rolePolicy is the role table behind DefaultPolicy: resource -> action ->
// allowed roles. Admin passes every check.
var rolePolicy = map[string]map[string][]models.Role{
	"users": {
		"read": {models.RoleCustomer, models.RoleTechnician},
	},
	"technicians": {
		"read":   {models.RoleCustomer, models.RoleTechnician},
		"update": {models.RoleTechnician},
	},
	"services": {
		"read": {models.RoleCustomer, models.RoleTechnician},
	},
	"appointments": {
		"create":     {models.RoleCustomer},
		"read":       {models.RoleCustomer, models.RoleTechnician},
		"status":     {models.RoleTechnician},
		"verify-otp": {models.RoleCustomer},
	},
	"loyalty-points": {
		"create": {models.RoleCustomer},
		"read":   {models.RoleCustomer},
	},
	"gift-cards": {
		"read":   {models.RoleCustomer, models.RoleTechnician},
		"redeem": {models.RoleCustomer},
	},
	"promotions": {
		"read":  {models.RoleCustomer, models.RoleTechnician},
		"apply": {models.RoleCustomer},
	},
	"referrals": {
		"create": {models.RoleCustomer},
		"read":   {models.RoleCustomer},
	},
}

// DefaultPolicy grants admins everything and other roles the entries in
// rolePolicy.
func DefaultPolicy(p Principal, action, resource string) bool {
	if p.Role == models.RoleAdmin {
		return true
	}
	actions, ok := rolePolicy[resource]
	if !ok {
		return false
	}
	for _, role := range actions[action] {
		if role == p.Role {
			return true
		}
	}
	return false
}

// RequirePermission gates a route on the policy decision for the caller set
// by Protected().
func RequirePermission(resource string, action string) fiber.Handler {
	return requirePermission(resource, action, DefaultPolicy)
}

func requirePermission(resource, action string, policy Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		parsed, err := models.ParseRole(role)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid role in token",
			})
		}
		p := Principal{
			ID:    localString(c, "userID"),
			Email: localString(c, "email"),
			Role:  parsed,
		}
		if !policy(p, action, resource) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have permission to perform this action",
			})
		}
		return c.Next()
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}
