package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/controllers"
	"github.com/beautyplaza/beautyplaza-api/middleware"
)

// SetupGiftCardRoutes configures gift card routes
func SetupGiftCardRoutes(app *fiber.App) {
	giftCards := app.Group("/api/gift-cards", middleware.Protected())

	giftCards.Get("/", middleware.RequirePermission("gift-cards", "list"), controllers.GetAllGiftCards)
	giftCards.Post("/", middleware.RequirePermission("gift-cards", "create"), controllers.CreateGiftCard)
	giftCards.Get("/code/:code", middleware.RequirePermission("gift-cards", "read"), controllers.GetGiftCardByCode)
	giftCards.Post("/code/:code/redeem", middleware.RequirePermission("gift-cards", "redeem"), controllers.RedeemGiftCard)
	giftCards.Delete("/:id", middleware.RequirePermission("gift-cards", "delete"), controllers.DeleteGiftCard)
}
