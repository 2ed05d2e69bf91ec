package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/db"
	"github.com/beautyplaza/beautyplaza-api/models"
	"github.com/beautyplaza/beautyplaza-api/utils"
)

// GetActivePromotions lists promotions currently running
func GetActivePromotions(c *fiber.Ctx) error {
	today := time.Now().Format("2006-01-02")
	var promotions []models.Promotion
	err := db.DB.
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, today, today).
		Find(&promotions).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}
	return c.JSON(promotions)
}

// GetAllPromotions lists every promotion regardless of state (admin only)
func GetAllPromotions(c *fiber.Ctx) error {
	var promotions []models.Promotion
	if err := db.DB.Order("start_date DESC").Find(&promotions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}
	return c.JSON(promotions)
}

func GetPromotion(c *fiber.Ctx) error {
	id := c.Params("id")
	var promotion models.Promotion
	if db.DB.First(&promotion, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Promotion not found with id: "+id, c.Method()+" "+c.Path()))
	}
	return c.JSON(promotion)
}

func GetPromotionByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	var promotion models.Promotion
	if db.DB.Where("promo_code = ?", code).First(&promotion).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Promotion not found with code: "+code, c.Method()+" "+c.Path()))
	}
	return c.JSON(promotion)
}

// ApplyPromotion computes a discounted price for an amount using a promo code
func ApplyPromotion(c *fiber.Ctx) error {
	type ApplyInput struct {
		PromoCode string  `json:"promo_code"`
		Amount    float64 `json:"amount"`
	}

	input := new(ApplyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}
	if input.Amount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Amount cannot be negative", c.Method()+" "+c.Path()))
	}

	var promotion models.Promotion
	if db.DB.Where("promo_code = ?", input.PromoCode).First(&promotion).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Promotion not found with code: "+input.PromoCode, c.Method()+" "+c.Path()))
	}

	today := time.Now().Format("2006-01-02")
	if !promotion.IsActive || promotion.Expired(today) || (promotion.StartDate != "" && promotion.StartDate > today) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Promotion is not currently active", c.Method()+" "+c.Path()))
	}

	discounted := promotion.Apply(input.Amount)
	return c.JSON(fiber.Map{
		"promo_code":        promotion.PromoCode,
		"original_amount":   input.Amount,
		"discounted_amount": discounted,
		"discount":          input.Amount - discounted,
	})
}

// CreatePromotion adds a promotion (admin only)
func CreatePromotion(c *fiber.Ctx) error {
	type CreateInput struct {
		Name          string  `json:"name"`
		Description   string  `json:"description"`
		PromoCode     string  `json:"promo_code"`
		DiscountType  string  `json:"discount_type"`
		DiscountValue float64 `json:"discount_value"`
		StartDate     string  `json:"start_date"`
		EndDate       string  `json:"end_date"`
	}

	input := new(CreateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}
	if input.Name == "" || input.PromoCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Name and promo code are required", c.Method()+" "+c.Path()))
	}

	discountType, err := models.ParseDiscountType(input.DiscountType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}
	if input.DiscountValue <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Discount value must be positive", c.Method()+" "+c.Path()))
	}
	if discountType == models.DiscountPercentage && input.DiscountValue > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Percentage discount cannot exceed 100", c.Method()+" "+c.Path()))
	}
	for _, d := range []string{input.StartDate, input.EndDate} {
		if d != "" {
			if _, err := time.Parse("2006-01-02", d); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Dates must use the YYYY-MM-DD format", c.Method()+" "+c.Path()))
			}
		}
	}

	var existing models.Promotion
	if db.DB.Where("promo_code = ?", input.PromoCode).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(utils.NewErrorDetails("Promotion with this code already exists", c.Method()+" "+c.Path()))
	}

	promotion := models.Promotion{
		Name:          input.Name,
		Description:   input.Description,
		PromoCode:     input.PromoCode,
		DiscountType:  discountType,
		DiscountValue: input.DiscountValue,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		IsActive:      true,
	}
	if err := db.DB.Create(&promotion).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to create promotion", c.Method()+" "+c.Path()))
	}
	return c.Status(fiber.StatusCreated).JSON(promotion)
}

// UpdatePromotion applies a partial update (admin only)
func UpdatePromotion(c *fiber.Ctx) error {
	id := c.Params("id")

	type UpdateInput struct {
		Name          *string  `json:"name"`
		Description   *string  `json:"description"`
		DiscountType  *string  `json:"discount_type"`
		DiscountValue *float64 `json:"discount_value"`
		StartDate     *string  `json:"start_date"`
		EndDate       *string  `json:"end_date"`
		IsActive      *bool    `json:"is_active"`
	}

	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}

	var promotion models.Promotion
	if db.DB.First(&promotion, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Promotion not found with id: "+id, c.Method()+" "+c.Path()))
	}

	if input.Name != nil {
		promotion.Name = *input.Name
	}
	if input.Description != nil {
		promotion.Description = *input.Description
	}
	if input.DiscountType != nil {
		discountType, err := models.ParseDiscountType(*input.DiscountType)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
		}
		promotion.DiscountType = discountType
	}
	if input.DiscountValue != nil {
		if *input.DiscountValue <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Discount value must be positive", c.Method()+" "+c.Path()))
		}
		promotion.DiscountValue = *input.DiscountValue
	}
	if input.StartDate != nil {
		promotion.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		promotion.EndDate = *input.EndDate
	}
	if input.IsActive != nil {
		promotion.IsActive = *input.IsActive
	}

	if err := db.DB.Save(&promotion).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to update promotion", c.Method()+" "+c.Path()))
	}
	return c.JSON(promotion)
}

// DeletePromotion removes a promotion (admin only)
func DeletePromotion(c *fiber.Ctx) error {
	id := c.Params("id")
	var promotion models.Promotion
	if db.DB.First(&promotion, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Promotion not found with id: "+id, c.Method()+" "+c.Path()))
	}
	if err := db.DB.Delete(&promotion).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to delete promotion", c.Method()+" "+c.Path()))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
