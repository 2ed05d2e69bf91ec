package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/db"
	"github.com/beautyplaza/beautyplaza-api/models"
	"github.com/beautyplaza/beautyplaza-api/utils"
)

// GetAllServices returns the active catalog. Admins can pass ?all=true
// to include deactivated entries.
func GetAllServices(c *fiber.Ctx) error {
	query := db.DB
	if c.Query("all") != "true" || models.Role(localString(c, "role")) != models.RoleAdmin {
		query = query.Where("is_active = ?", true)
	}

	var services []models.BeautyService
	if err := query.Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}
	return c.JSON(services)
}

func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.BeautyService
	if db.DB.First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Service not found with id: "+id, c.Method()+" "+c.Path()))
	}
	return c.JSON(service)
}

// CreateService adds a catalog entry
func CreateService(c *fiber.Ctx) error {
	service := new(models.BeautyService)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}
	if service.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Service name is required", c.Method()+" "+c.Path()))
	}
	if service.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Service price cannot be negative", c.Method()+" "+c.Path()))
	}
	if service.Duration <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Service duration must be positive", c.Method()+" "+c.Path()))
	}
	service.ID = 0
	service.IsActive = true
	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to create service", c.Method()+" "+c.Path()))
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService applies a partial update to a catalog entry
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")

	type UpdateServiceInput struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		Duration    *int     `json:"duration"`
		ImageURL    *string  `json:"image_url"`
		IsActive    *bool    `json:"is_active"`
	}

	input := new(UpdateServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}

	var service models.BeautyService
	if db.DB.First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Service not found with id: "+id, c.Method()+" "+c.Path()))
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Service price cannot be negative", c.Method()+" "+c.Path()))
		}
		service.Price = *input.Price
	}
	if input.Duration != nil {
		if *input.Duration <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Service duration must be positive", c.Method()+" "+c.Path()))
		}
		service.Duration = *input.Duration
	}
	if input.ImageURL != nil {
		service.ImageURL = *input.ImageURL
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to update service", c.Method()+" "+c.Path()))
	}
	return c.JSON(service)
}

// DeleteService deactivates a catalog entry instead of removing the row,
// so past appointments keep a valid service reference.
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.BeautyService
	if db.DB.First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Service not found with id: "+id, c.Method()+" "+c.Path()))
	}
	service.IsActive = false
	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to delete service", c.Method()+" "+c.Path()))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
