package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/controllers"
	"github.com/beautyplaza/beautyplaza-api/middleware"
)

// SetupServiceRoutes configures catalog routes
func SetupServiceRoutes(app *fiber.App) {
	services := app.Group("/api/services")

	// Public routes so the catalog can be browsed before signing in
	services.Get("/", controllers.GetAllServices)
	services.Get("/:id", controllers.GetService)

	// Protected routes
	services.Post("/", middleware.Protected(), middleware.RequirePermission("services", "create"), controllers.CreateService)
	services.Put("/:id", middleware.Protected(), middleware.RequirePermission("services", "update"), controllers.UpdateService)
	services.Delete("/:id", middleware.Protected(), middleware.RequirePermission("services", "delete"), controllers.DeleteService)
}
