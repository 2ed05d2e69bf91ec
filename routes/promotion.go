package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/controllers"
	"github.com/beautyplaza/beautyplaza-api/middleware"
)

// SetupPromotionRoutes configures promotion routes
func SetupPromotionRoutes(app *fiber.App) {
	promotions := app.Group("/api/promotions")

	// Public routes so running promotions can be shown before sign-in
	promotions.Get("/active", controllers.GetActivePromotions)
	promotions.Get("/code/:code", controllers.GetPromotionByCode)

	// Protected routes
	promotions.Post("/apply", middleware.Protected(), middleware.RequirePermission("promotions", "apply"), controllers.ApplyPromotion)
	promotions.Get("/", middleware.Protected(), middleware.RequirePermission("promotions", "list"), controllers.GetAllPromotions)
	promotions.Post("/", middleware.Protected(), middleware.RequirePermission("promotions", "create"), controllers.CreatePromotion)
	promotions.Get("/:id", middleware.Protected(), middleware.RequirePermission("promotions", "read"), controllers.GetPromotion)
	promotions.Put("/:id", middleware.Protected(), middleware.RequirePermission("promotions", "update"), controllers.UpdatePromotion)
	promotions.Delete("/:id", middleware.Protected(), middleware.RequirePermission("promotions", "delete"), controllers.DeletePromotion)
}
