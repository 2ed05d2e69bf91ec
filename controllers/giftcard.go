package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/db"
	"github.com/beautyplaza/beautyplaza-api/models"
	"github.com/beautyplaza/beautyplaza-api/utils"
)

// GetAllGiftCards lists every issued card (admin only)
func GetAllGiftCards(c *fiber.Ctx) error {
	var cards []models.GiftCard
	if err := db.DB.Order("created_at DESC").Find(&cards).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}
	return c.JSON(cards)
}

// GetGiftCardByCode looks a card up by its printed code
func GetGiftCardByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	var card models.GiftCard
	if db.DB.Where("code = ?", code).First(&card).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Gift card not found with code: "+code, c.Method()+" "+c.Path()))
	}
	return c.JSON(card)
}

// CreateGiftCard issues a new card. The code is generated server-side and
// the expiry defaults to one year out when not supplied.
func CreateGiftCard(c *fiber.Ctx) error {
	type CreateGiftCardInput struct {
		InitialAmount     float64 `json:"initial_amount"`
		ExpiryDate        string  `json:"expiry_date"`
		PurchasedByUserID *string `json:"purchased_by_user_id"`
	}

	input := new(CreateGiftCardInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}
	if input.InitialAmount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Gift card amount must be positive", c.Method()+" "+c.Path()))
	}

	expiry := input.ExpiryDate
	if expiry == "" {
		expiry = time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", expiry); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Expiry date must use the YYYY-MM-DD format", c.Method()+" "+c.Path()))
	}

	if input.PurchasedByUserID != nil {
		var user models.User
		if db.DB.Where("id = ?", *input.PurchasedByUserID).First(&user).RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("User not found with id: "+*input.PurchasedByUserID, c.Method()+" "+c.Path()))
		}
	}

	card := models.GiftCard{
		Code:              utils.GenerateGiftCardCode(),
		InitialAmount:     input.InitialAmount,
		CurrentBalance:    input.InitialAmount,
		ExpiryDate:        expiry,
		IsActive:          true,
		PurchasedByUserID: input.PurchasedByUserID,
	}
	if err := db.DB.Create(&card).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to create gift card", c.Method()+" "+c.Path()))
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

// RedeemGiftCard deducts an amount from a card's balance
func RedeemGiftCard(c *fiber.Ctx) error {
	code := c.Params("code")

	type RedeemInput struct {
		Amount float64 `json:"amount"`
	}

	input := new(RedeemInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}
	if input.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Redemption amount must be positive", c.Method()+" "+c.Path()))
	}

	var card models.GiftCard
	if db.DB.Where("code = ?", code).First(&card).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Gift card not found with code: "+code, c.Method()+" "+c.Path()))
	}

	if err := card.Redeem(input.Amount, time.Now().Format("2006-01-02")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}

	if err := db.DB.Save(&card).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to redeem gift card", c.Method()+" "+c.Path()))
	}
	return c.JSON(card)
}

// DeleteGiftCard deactivates a card (admin only)
func DeleteGiftCard(c *fiber.Ctx) error {
	id := c.Params("id")
	var card models.GiftCard
	if db.DB.First(&card, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Gift card not found with id: "+id, c.Method()+" "+c.Path()))
	}
	card.IsActive = false
	if err := db.DB.Save(&card).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to deactivate gift card", c.Method()+" "+c.Path()))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
