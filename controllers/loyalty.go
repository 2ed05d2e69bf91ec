package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/db"
	"github.com/beautyplaza/beautyplaza-api/models"
	"github.com/beautyplaza/beautyplaza-api/utils"
)

func loyaltyBalance(userID string) (int, error) {
	var total int
	err := db.DB.Model(&models.LoyaltyPoint{}).
		Select("COALESCE(SUM(CASE WHEN transaction_type = 'EARNED' THEN points ELSE -points END), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	return total, err
}

// RecordLoyaltyTransaction appends an EARNED or REDEEMED entry to the
// ledger. Redemptions are checked against the current balance and must
// name a redemption method; bank credits also need account details.
func RecordLoyaltyTransaction(c *fiber.Ctx) error {
	type TransactionInput struct {
		UserID           string  `json:"user_id"`
		TransactionType  string  `json:"transaction_type"`
		Points           int     `json:"points"`
		Description      string  `json:"description"`
		AppointmentID    *uint   `json:"appointment_id"`
		RedemptionMethod string  `json:"redemption_method"`
		BankAccount      string  `json:"bank_account"`
		RoutingNumber    string  `json:"routing_number"`
		RedemptionValue  float64 `json:"redemption_value"`
	}

	input := new(TransactionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}

	// Customers may only write to their own ledger.
	if models.Role(localString(c, "role")) == models.RoleCustomer {
		input.UserID = localString(c, "userID")
	}

	var user models.User
	if db.DB.Where("id = ?", input.UserID).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("User not found with id: "+input.UserID, c.Method()+" "+c.Path()))
	}

	transactionType, err := models.ParseTransactionType(input.TransactionType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}
	if input.Points <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Points must be positive", c.Method()+" "+c.Path()))
	}

	entry := models.LoyaltyPoint{
		UserID:          input.UserID,
		TransactionType: transactionType,
		Points:          input.Points,
		Description:     input.Description,
		AppointmentID:   input.AppointmentID,
	}

	if transactionType == models.TransactionRedeemed {
		balance, err := loyaltyBalance(input.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
		}
		if input.Points > balance {
			return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Insufficient loyalty points balance", c.Method()+" "+c.Path()))
		}
		if input.RedemptionMethod == "" {
			return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Redemption method is required", c.Method()+" "+c.Path()))
		}
		method, err := models.ParseRedemptionMethod(input.RedemptionMethod)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
		}
		if method == models.RedeemBankCredit && (input.BankAccount == "" || input.RoutingNumber == "") {
			return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Bank account and routing number are required for bank credit redemption", c.Method()+" "+c.Path()))
		}
		entry.RedemptionMethod = method
		entry.BankAccount = input.BankAccount
		entry.RoutingNumber = input.RoutingNumber
		entry.RedemptionValue = input.RedemptionValue
	}

	if err := db.DB.Create(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to record transaction", c.Method()+" "+c.Path()))
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func GetLoyaltyTransaction(c *fiber.Ctx) error {
	id := c.Params("id")
	var entry models.LoyaltyPoint
	if db.DB.First(&entry, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Loyalty transaction not found with id: "+id, c.Method()+" "+c.Path()))
	}
	if models.Role(localString(c, "role")) == models.RoleCustomer && entry.UserID != localString(c, "userID") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}
	return c.JSON(entry)
}

// GetLoyaltyTransactionsByUser lists a user's ledger, newest first
func GetLoyaltyTransactionsByUser(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if models.Role(localString(c, "role")) == models.RoleCustomer && userID != localString(c, "userID") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}

	var user models.User
	if db.DB.Where("id = ?", userID).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("User not found with id: "+userID, c.Method()+" "+c.Path()))
	}

	var entries []models.LoyaltyPoint
	if err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}
	return c.JSON(entries)
}

// GetLoyaltyBalance returns the current balance and tier for a user
func GetLoyaltyBalance(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if models.Role(localString(c, "role")) == models.RoleCustomer && userID != localString(c, "userID") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}

	var user models.User
	if db.DB.Where("id = ?", userID).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("User not found with id: "+userID, c.Method()+" "+c.Path()))
	}

	balance, err := loyaltyBalance(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
	}
	return c.JSON(fiber.Map{
		"user_id": userID,
		"balance": balance,
		"tier":    models.LoyaltyTier(balance),
	})
}

// UpdateLoyaltyTransaction corrects a ledger entry (admin only)
func UpdateLoyaltyTransaction(c *fiber.Ctx) error {
	id := c.Params("id")

	type UpdateInput struct {
		Points      *int    `json:"points"`
		Description *string `json:"description"`
	}

	input := new(UpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Cannot parse JSON", c.Method()+" "+c.Path()))
	}

	var entry models.LoyaltyPoint
	if db.DB.First(&entry, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Loyalty transaction not found with id: "+id, c.Method()+" "+c.Path()))
	}

	if input.Points != nil {
		if *input.Points <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("Points must be positive", c.Method()+" "+c.Path()))
		}
		entry.Points = *input.Points
	}
	if input.Description != nil {
		entry.Description = *input.Description
	}

	if err := db.DB.Save(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to update transaction", c.Method()+" "+c.Path()))
	}
	return c.JSON(entry)
}

// DeleteLoyaltyTransaction removes a ledger entry (admin only)
func DeleteLoyaltyTransaction(c *fiber.Ctx) error {
	id := c.Params("id")
	var entry models.LoyaltyPoint
	if db.DB.First(&entry, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails("Loyalty transaction not found with id: "+id, c.Method()+" "+c.Path()))
	}
	if err := db.DB.Delete(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails("Failed to delete transaction", c.Method()+" "+c.Path()))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
