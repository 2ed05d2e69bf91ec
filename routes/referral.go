package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/controllers"
	"github.com/beautyplaza/beautyplaza-api/middleware"
)

// SetupReferralRoutes configures referral routes
func SetupReferralRoutes(app *fiber.App) {
	referrals := app.Group("/api/referrals", middleware.Protected())

	referrals.Post("/", middleware.RequirePermission("referrals", "create"), controllers.GenerateReferral)
	referrals.Get("/code/:code", middleware.RequirePermission("referrals", "read"), controllers.GetReferralByCode)
	referrals.Get("/referrer/:userId", middleware.RequirePermission("referrals", "read"), controllers.GetReferralsByReferrer)
	referrals.Post("/code/:code/complete", middleware.RequirePermission("referrals", "complete"), controllers.CompleteReferral)
	referrals.Post("/code/:code/cancel", middleware.RequirePermission("referrals", "cancel"), controllers.CancelReferral)
}
