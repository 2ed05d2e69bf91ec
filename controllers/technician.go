package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/db"
	"github.com/beautyplaza/beautyplaza-api/models"
	"github.com/beautyplaza/beautyplaza-api/utils"
)

// GetAllTechnicians returns the full roster
func GetAllTechnicians(c *fiber.Ctx) error {
	var technicians []models.Technician
	if err := db.DB.Preload("User").Find(&technicians).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}
	return c.JSON(technicians)
}

// GetAvailableTechnicians returns only technicians open for bookings
func GetAvailableTechnicians(c *fiber.Ctx) error {
	var technicians []models.Technician
	if err := db.DB.Where("is_available = ?", true).Find(&technicians).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}
	return c.JSON(technicians)
}

func GetTechnician(c *fiber.Ctx) error {
	id := c.Params("id")
	var technician models.Technician
	if db.DB.Preload("User").First(&technician, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Technician not found with id: "+id, c.Method()+" "+c.Path()))
	}
	return c.JSON(technician)
}

// CreateTechnician adds a technician to the roster, optionally linked to
// an existing technician user account.
func CreateTechnician(c *fiber.Ctx) error {
	technician := new(models.Technician)
	if err := c.BodyParser(technician); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}
	if technician.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Technician name is required", c.Method()+" "+c.Path()))
	}
	if technician.UserID != nil {
		var user models.User
		if db.DB.Where("id = ?", *technician.UserID).First(&user).RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("User not found with id: "+*technician.UserID, c.Method()+" "+c.Path()))
		}
		if user.Role != models.RoleTechnician {
			return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Linked account must have the technician role", c.Method()+" "+c.Path()))
		}
	}
	if err := db.DB.Create(&technician).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to create technician", c.Method()+" "+c.Path()))
	}
	return c.Status(fiber.StatusCreated).JSON(technician)
}

// canManageTechnician reports whether the caller may modify the roster
// entry: admins any, technicians only the entry linked to their account.
func canManageTechnician(role models.Role, userID string, technician *models.Technician) bool {
	if role == models.RoleAdmin {
		return true
	}
	return technician.UserID != nil && *technician.UserID == userID
}

// UpdateTechnician applies a partial update to a roster entry
func UpdateTechnician(c *fiber.Ctx) error {
	id := c.Params("id")

	type UpdateTechnicianInput struct {
		Name        *string   `json:"name"`
		Specialties *[]string `json:"specialties"`
		UserID      *string   `json:"user_id"`
		ImageURL    *string   `json:"image_url"`
		IsAvailable *bool     `json:"is_available"`
	}

	input := new(UpdateTechnicianInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}

	var technician models.Technician
	if db.DB.First(&technician, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Technician not found with id: "+id, c.Method()+" "+c.Path()))
	}
	if !canManageTechnician(models.Role(localString(c, "role")), localString(c, "userID"), &technician) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}

	if input.Name != nil {
		technician.Name = *input.Name
	}
	if input.Specialties != nil {
		technician.Specialties = *input.Specialties
	}
	if input.UserID != nil {
		var user models.User
		if db.DB.Where("id = ?", *input.UserID).First(&user).RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("User not found with id: "+*input.UserID, c.Method()+" "+c.Path()))
		}
		technician.UserID = input.UserID
	}
	if input.ImageURL != nil {
		technician.ImageURL = *input.ImageURL
	}
	if input.IsAvailable != nil {
		technician.IsAvailable = *input.IsAvailable
	}

	if err := db.DB.Save(&technician).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to update technician", c.Method()+" "+c.Path()))
	}
	return c.JSON(technician)
}

// DeleteTechnician removes a roster entry
func DeleteTechnician(c *fiber.Ctx) error {
	id := c.Params("id")
	var technician models.Technician
	if db.DB.First(&technician, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Technician not found with id: "+id, c.Method()+" "+c.Path()))
	}
	if err := db.DB.Delete(&technician).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to delete technician", c.Method()+" "+c.Path()))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadTechnicianImage stores a profile photo on Cloudinary and saves
// the returned URL on the roster entry.
func UploadTechnicianImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var technician models.Technician
	if db.DB.First(&technician, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Technician not found with id: "+id, c.Method()+" "+c.Path()))
	}
	if !canManageTechnician(models.Role(localString(c, "role")), localString(c, "userID"), &technician) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Image file is required", c.Method()+" "+c.Path()))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot read image file", c.Method()+" "+c.Path()))
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("technician-%d", technician.ID), "technicians")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to upload image", c.Method()+" "+c.Path()))
	}

	technician.ImageURL = url
	if err := db.DB.Save(&technician).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to update technician", c.Method()+" "+c.Path()))
	}
	return c.JSON(technician)
}
