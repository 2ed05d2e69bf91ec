package controllers

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/beautyplaza/beautyplaza-api/db"
	"github.com/beautyplaza/beautyplaza-api/models"
	"github.com/beautyplaza/beautyplaza-api/utils"
)

// GetAllUsers returns all user accounts
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := db.DB.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// canReadUser reports whether the caller may read the given account:
// admins any, everyone else only their own.
func canReadUser(role models.Role, callerID, targetID string) bool {
	return role == models.RoleAdmin || callerID == targetID
}

func GetUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if !canReadUser(models.Role(localString(c, "role")), localString(c, "userID"), id) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}
	var user models.User
	if db.DB.Where("id = ?", id).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("User not found with id: "+id, c.Method()+" "+c.Path()))
	}
	user.Password = ""
	return c.JSON(user)
}

// CreateUser creates an account with any role. Unlike Register it is
// admin-only, so the role comes straight from the request.
func CreateUser(c *fiber.Ctx) error {
	type CreateUserInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		Role     string `json:"role"`
	}

	input := new(CreateUserInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}
	if input.Email == "" || input.Password == "" || input.FullName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Missing required fields", c.Method()+" "+c.Path()))
	}

	var existingUser models.User
	if db.DB.Where("email = ?", input.Email).First(&existingUser).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.NewErrorDetails("User with this email already exists", c.Method()+" "+c.Path()))
	}

	role := models.RoleCustomer
	if input.Role != "" {
		parsed, err := models.ParseRole(input.Role)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
		}
		role = parsed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to hash password", c.Method()+" "+c.Path()))
	}

	user := models.User{
		Email:    input.Email,
		Password: string(hashedPassword),
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     role,
		IsActive: true,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to create user", c.Method()+" "+c.Path()))
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser applies a partial update; absent fields are left alone.
func UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	type UpdateUserInput struct {
		Email    *string `json:"email"`
		Password *string `json:"password"`
		FullName *string `json:"full_name"`
		Phone    *string `json:"phone"`
		Role     *string `json:"role"`
		IsActive *bool   `json:"is_active"`
	}

	input := new(UpdateUserInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}

	var user models.User
	if db.DB.Where("id = ?", id).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("User not found with id: "+id, c.Method()+" "+c.Path()))
	}

	if input.Email != nil && *input.Email != user.Email {
		var existing models.User
		if db.DB.Where("email = ? AND id <> ?", *input.Email, user.ID).First(&existing).RowsAffected > 0 {
			return c.Status(fiber.StatusConflict).JSON(utils.NewErrorDetails("User with this email already exists", c.Method()+" "+c.Path()))
		}
		user.Email = *input.Email
	}
	if input.Password != nil && *input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to hash password", c.Method()+" "+c.Path()))
		}
		user.Password = string(hashedPassword)
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Role != nil {
		role, err := models.ParseRole(*input.Role)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
		}
		user.Role = role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to update user", c.Method()+" "+c.Path()))
	}

	user.Password = ""
	return c.JSON(user)
}

// DeleteUser removes an account
func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")
	var user models.User
	if db.DB.Where("id = ?", id).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("User not found with id: "+id, c.Method()+" "+c.Path()))
	}
	if err := db.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to delete user", c.Method()+" "+c.Path()))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
