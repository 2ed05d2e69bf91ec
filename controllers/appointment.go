package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/beautyplaza/beautyplaza-api/booking"
	"github.com/beautyplaza/beautyplaza-api/db"
	"github.com/beautyplaza/beautyplaza-api/models"
	"github.com/beautyplaza/beautyplaza-api/otp"
	"github.com/beautyplaza/beautyplaza-api/redis"
	"github.com/beautyplaza/beautyplaza-api/repository"
	"github.com/beautyplaza/beautyplaza-api/utils"
)

// Booking holds the wired scheduling core. Set up once after the database
// and redis connections are ready.
var Booking *booking.Service

func InitBooking() {
	Booking = booking.NewService(
		repository.NewDirectory(db.DB),
		repository.NewAppointmentRepository(db.DB),
		otp.NewStore(redis.Client),
		utils.SMTPMailer{},
	)
}

// canSeeAppointment reports whether the caller may read the given
// appointment: admins always, customers their own bookings, technicians
// the bookings assigned to their profile.
func canSeeAppointment(c *fiber.Ctx, appt *models.Appointment) bool {
	role := localString(c, "role")
	userID := localString(c, "userID")
	switch models.Role(role) {
	case models.RoleAdmin:
		return true
	case models.RoleCustomer:
		return appt.CustomerID == userID
	case models.RoleTechnician:
		return appt.Technician != nil && appt.Technician.UserID != nil && *appt.Technician.UserID == userID
	}
	return false
}

func localString(c *fiber.Ctx, key string) string {
	if v, ok := c.Locals(key).(string); ok {
		return v
	}
	return ""
}

func GetAllAppointments(c *fiber.Ctx) error {
	appointments, err := Booking.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appointments)
}

func GetAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("invalid appointment id", c.Method()+" "+c.Path()))
	}
	appt, err := Booking.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	if !canSeeAppointment(c, appt) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}
	return c.JSON(appt)
}

func CreateAppointment(c *fiber.Ctx) error {
	var input booking.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("invalid request body", c.Method()+" "+c.Path()))
	}
	// Customers can only book for themselves.
	if models.Role(localString(c, "role")) == models.RoleCustomer {
		input.CustomerID = localString(c, "userID")
	}
	appt, err := Booking.Create(input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appt)
}

func UpdateAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("invalid appointment id", c.Method()+" "+c.Path()))
	}
	var input booking.UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("invalid request body", c.Method()+" "+c.Path()))
	}
	appt, err := Booking.Update(uint(id), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appt)
}

func UpdateAppointmentStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("invalid appointment id", c.Method()+" "+c.Path()))
	}
	status := c.Query("status")
	appt, err := Booking.UpdateStatus(uint(id), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appt)
}

func VerifyAppointmentOTP(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("invalid appointment id", c.Method()+" "+c.Path()))
	}
	code := c.Query("otp")
	appt, err := Booking.VerifyOTP(uint(id), code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appt)
}

func DeleteAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("invalid appointment id", c.Method()+" "+c.Path()))
	}
	if err := Booking.Delete(uint(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetAppointmentsByCustomer(c *fiber.Ctx) error {
	customerID := c.Params("customerId")
	role := models.Role(localString(c, "role"))
	if role == models.RoleCustomer && customerID != localString(c, "userID") {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}
	appointments, err := Booking.ListByCustomer(customerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appointments)
}

func GetAppointmentsByTechnician(c *fiber.Ctx) error {
	technicianID, err := c.ParamsInt("technicianId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("invalid technician id", c.Method()+" "+c.Path()))
	}
	if models.Role(localString(c, "role")) == models.RoleTechnician {
		var technician models.Technician
		if err := db.DB.First(&technician, technicianID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(utils.NewErrorDetails(fmt.Sprintf("Technician not found with id: %d", technicianID), c.Method()+" "+c.Path()))
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.NewErrorDetails(err.Error(), c.Method()+" "+c.Path()))
		}
		if technician.UserID == nil || *technician.UserID != localString(c, "userID") {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have permission to perform this action",
			})
		}
	}
	appointments, err := Booking.ListByTechnician(uint(technicianID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appointments)
}

func GetAppointmentsByDate(c *fiber.Ctx) error {
	appointments, err := Booking.ListByDate(c.Params("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appointments)
}

func GetAvailableSlots(c *fiber.Ctx) error {
	technicianID, err := c.ParamsInt("technicianId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.NewErrorDetails("invalid technician id", c.Method()+" "+c.Path()))
	}
	slots, err := Booking.AvailableSlots(uint(technicianID), c.Query("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"technician_id":   technicianID,
		"date":            c.Query("date"),
		"available_slots": slots,
	})
}
