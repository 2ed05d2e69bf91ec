package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/db"
	"github.com/beautyplaza/beautyplaza-api/models"
	"github.com/beautyplaza/beautyplaza-api/utils"
)

// GetAllSettings lists every application setting
func GetAllSettings(c *fiber.Ctx) error {
	var settings []models.Setting
	if err := db.DB.Order("setting_key").Find(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}
	return c.JSON(settings)
}

func GetSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	var setting models.Setting
	if db.DB.Where("setting_key = ?", key).First(&setting).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Setting not found with key: "+key, c.Method()+" "+c.Path()))
	}
	return c.JSON(setting)
}

// UpsertSetting creates or replaces the value stored under a key
func UpsertSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	body := c.Body()
	if len(body) == 0 || !json.Valid(body) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Setting value must be valid JSON", c.Method()+" "+c.Path()))
	}

	var setting models.Setting
	if db.DB.Where("setting_key = ?", key).First(&setting).RowsAffected == 0 {
		setting = models.Setting{SettingKey: key, SettingValue: models.JSONValue(body)}
		if err := db.DB.Create(&setting).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to create setting", c.Method()+" "+c.Path()))
		}
		return c.Status(fiber.StatusCreated).JSON(setting)
	}

	setting.SettingValue = models.JSONValue(body)
	if err := db.DB.Save(&setting).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to update setting", c.Method()+" "+c.Path()))
	}
	return c.JSON(setting)
}

// DeleteSetting removes a key
func DeleteSetting(c *fiber.Ctx) error {
	key := c.Params("key")
	var setting models.Setting
	if db.DB.Where("setting_key = ?", key).First(&setting).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Setting not found with key: "+key, c.Method()+" "+c.Path()))
	}
	if err := db.DB.Delete(&setting).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to delete setting", c.Method()+" "+c.Path()))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
