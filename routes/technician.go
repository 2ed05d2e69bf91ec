package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/controllers"
	"github.com/beautyplaza/beautyplaza-api/middleware"
)

// SetupTechnicianRoutes configures roster routes
func SetupTechnicianRoutes(app *fiber.App) {
	technicians := app.Group("/api/technicians")

	// Public routes so customers can browse the roster before signing in
	technicians.Get("/", controllers.GetAllTechnicians)
	technicians.Get("/available", controllers.GetAvailableTechnicians)
	technicians.Get("/:id", controllers.GetTechnician)

	// Protected routes
	technicians.Post("/", middleware.Protected(), middleware.RequirePermission("technicians", "create"), controllers.CreateTechnician)
	technicians.Put("/:id", middleware.Protected(), middleware.RequirePermission("technicians", "update"), controllers.UpdateTechnician)
	technicians.Post("/:id/image", middleware.Protected(), middleware.RequirePermission("technicians", "update"), controllers.UploadTechnicianImage)
	technicians.Delete("/:id", middleware.Protected(), middleware.RequirePermission("technicians", "delete"), controllers.DeleteTechnician)
}
