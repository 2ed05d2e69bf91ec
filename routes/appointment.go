package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beautyplaza/beautyplaza-api/controllers"
	"github.com/beautyplaza/beautyplaza-api/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointments := app.Group("/api/appointments")

	// Slot availability is public so the booking page works before sign-in
	appointments.Get("/technician/:technicianId/slots", controllers.GetAvailableSlots)

	appointments.Use(middleware.Protected())

	appointments.Get("/", middleware.RequirePermission("appointments", "list"), controllers.GetAllAppointments)
	appointments.Post("/", middleware.RequirePermission("appointments", "create"), controllers.CreateAppointment)
	appointments.Get("/customer/:customerId", middleware.RequirePermission("appointments", "read"), controllers.GetAppointmentsByCustomer)
	appointments.Get("/technician/:technicianId", middleware.RequirePermission("appointments", "read"), controllers.GetAppointmentsByTechnician)
	appointments.Get("/date/:date", middleware.RequirePermission("appointments", "list"), controllers.GetAppointmentsByDate)
	appointments.Get("/:id", middleware.RequirePermission("appointments", "read"), controllers.GetAppointment)
	appointments.Put("/:id", middleware.RequirePermission("appointments", "update"), controllers.UpdateAppointment)
	appointments.Patch("/:id/status", middleware.RequirePermission("appointments", "status"), controllers.UpdateAppointmentStatus)
	appointments.Post("/:id/verify-otp", middleware.RequirePermission("appointments", "verify-otp"), controllers.VerifyAppointmentOTP)
	appointments.Delete("/:id", middleware.RequirePermission("appointments", "delete"), controllers.DeleteAppointment)
}
