package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/db"
	"github.com/beautyplaza/beautyplaza-api/models"
	"github.com/beautyplaza/beautyplaza-api/utils"
)

// GenerateReferral creates a pending referral code for a referrer
func GenerateReferral(c *fiber.Ctx) error {
	type GenerateInput struct {
		ReferrerUserID    string `json:"referrer_user_id"`
		ReferredUserEmail string `json:"referred_user_email"`
	}

	input := new(GenerateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}

	// Customers generate referrals for themselves only.
	if models.Role(localString(c, "role")) == models.RoleCustomer {
		input.ReferrerUserID = localString(c, "userID")
	}

	var referrer models.User
	if db.DB.Where("id = ?", input.ReferrerUserID).First(&referrer).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("User not found with id: "+input.ReferrerUserID, c.Method()+" "+c.Path()))
	}

	referral := models.Referral{
		ReferrerUserID:    input.ReferrerUserID,
		ReferralCode:      utils.GenerateReferralCode(),
		ReferredUserEmail: input.ReferredUserEmail,
		Status:            models.ReferralPending,
		GeneratedDate:     time.Now(),
	}
	if err := db.DB.Create(&referral).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to create referral", c.Method()+" "+c.Path()))
	}
	return c.Status(fiber.StatusCreated).JSON(referral)
}

func GetReferralByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	var referral models.Referral
	if db.DB.Where("referral_code = ?", code).First(&referral).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Referral not found with code: "+code, c.Method()+" "+c.Path()))
	}
	return c.JSON(referral)
}

// GetReferralsByReferrer lists the referrals a user has generated
func GetReferralsByReferrer(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if models.Role(localString(c, "role")) == models.RoleCustomer && userID != localString(c, "userID") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}

	var referrals []models.Referral
	if err := db.DB.Where("referrer_user_id = ?", userID).Order("generated_date DESC").Find(&referrals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}
	return c.JSON(referrals)
}

// CompleteReferral marks a pending referral as completed once the
// referred person has signed up.
func CompleteReferral(c *fiber.Ctx) error {
	code := c.Params("code")

	type CompleteInput struct {
		ReferredUserID string `json:"referred_user_id"`
	}

	input := new(CompleteInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}

	var referral models.Referral
	if db.DB.Where("referral_code = ?", code).First(&referral).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Referral not found with code: "+code, c.Method()+" "+c.Path()))
	}
	if referral.Status != models.ReferralPending {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Referral has already been completed or cancelled", c.Method()+" "+c.Path()))
	}

	var referred models.User
	if db.DB.Where("id = ?", input.ReferredUserID).First(&referred).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("User not found with id: "+input.ReferredUserID, c.Method()+" "+c.Path()))
	}
	if referred.ID == referral.ReferrerUserID {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("A referral cannot be completed by its own referrer", c.Method()+" "+c.Path()))
	}

	now := time.Now()
	referral.ReferredUserID = &referred.ID
	referral.Status = models.ReferralCompleted
	referral.CompletedDate = &now

	if err := db.DB.Save(&referral).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to complete referral", c.Method()+" "+c.Path()))
	}

	// Completing a referral rewards the referrer with loyalty points.
	reward := models.LoyaltyPoint{
		UserID:          referral.ReferrerUserID,
		TransactionType: models.TransactionEarned,
		Points:          100,
		Description:     "Referral bonus for code " + referral.ReferralCode,
	}
	if err := db.DB.Create(&reward).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to award referral bonus", c.Method()+" "+c.Path()))
	}

	return c.JSON(referral)
}

// CancelReferral voids a pending referral (admin only)
func CancelReferral(c *fiber.Ctx) error {
	code := c.Params("code")
	var referral models.Referral
	if db.DB.Where("referral_code = ?", code).First(&referral).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Referral not found with code: "+code, c.Method()+" "+c.Path()))
	}
	if referral.Status != models.ReferralPending {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Only pending referrals can be cancelled", c.Method()+" "+c.Path()))
	}
	referral.Status = models.ReferralCancelled
	if err := db.DB.Save(&referral).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to cancel referral", c.Method()+" "+c.Path()))
	}
	return c.JSON(referral)
}
