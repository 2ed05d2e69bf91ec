package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/controllers"
	"github.com/beautyplaza/beautyplaza-api/middleware"
)

// SetupSettingRoutes configures application setting routes (admin only)
func SetupSettingRoutes(app *fiber.App) {
	settings := app.Group("/api/settings", middleware.Protected())

	settings.Get("/", middleware.RequirePermission("settings", "list"), controllers.GetAllSettings)
	settings.Get("/:key", middleware.RequirePermission("settings", "read"), controllers.GetSetting)
	settings.Put("/:key", middleware.RequirePermission("settings", "update"), controllers.UpsertSetting)
	settings.Delete("/:key", middleware.RequirePermission("settings", "delete"), controllers.DeleteSetting)
}
