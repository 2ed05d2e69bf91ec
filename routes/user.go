package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/controllers"
	"github.com/beautyplaza/beautyplaza-api/middleware"
)

// SetupUserRoutes configures account management routes
func SetupUserRoutes(app *fiber.App) {
	users := app.Group("/api/users", middleware.Protected())

	users.Get("/", middleware.RequirePermission("users", "list"), controllers.GetAllUsers)
	users.Post("/", middleware.RequirePermission("users", "create"), controllers.CreateUser)
	users.Get("/:id", middleware.RequirePermission("users", "read"), controllers.GetUser)
	users.Put("/:id", middleware.RequirePermission("users", "update"), controllers.UpdateUser)
	users.Delete("/:id", middleware.RequirePermission("users", "delete"), controllers.DeleteUser)
}
