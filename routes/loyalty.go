package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/controllers"
	"github.com/beautyplaza/beautyplaza-api/middleware"
)

// SetupLoyaltyRoutes configures loyalty ledger routes
func SetupLoyaltyRoutes(app *fiber.App) {
	loyalty := app.Group("/api/loyalty-points", middleware.Protected())

	loyalty.Post("/", middleware.RequirePermission("loyalty-points", "create"), controllers.RecordLoyaltyTransaction)
	loyalty.Get("/user/:userId", middleware.RequirePermission("loyalty-points", "read"), controllers.GetLoyaltyTransactionsByUser)
	loyalty.Get("/user/:userId/total", middleware.RequirePermission("loyalty-points", "read"), controllers.GetLoyaltyBalance)
	loyalty.Get("/:id", middleware.RequirePermission("loyalty-points", "read"), controllers.GetLoyaltyTransaction)
	loyalty.Put("/:id", middleware.RequirePermission("loyalty-points", "update"), controllers.UpdateLoyaltyTransaction)
	loyalty.Delete("/:id", middleware.RequirePermission("loyalty-points", "delete"), controllers.DeleteLoyaltyTransaction)
}
