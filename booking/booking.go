// Package booking owns the appointment lifecycle: slot-guarded creation,
// partial updates, OTP-gated confirmation and status changes. It talks to
// persistence only through the interfaces below.
package booking

import (
	"github.com/beautyplaza/beautyplaza-api/models"
)

// DirectoryLookup resolves the entities an appointment references. A miss is
// reported as a NotFoundError; the booking layer never creates these records.
type DirectoryLookup interface {
	FindCustomer(id string) (*models.User, error)
	FindService(id uint) (*models.BeautyService, error)
	FindTechnician(id uint) (*models.Technician, error)
}

// AppointmentStore persists appointments. Create and Update must run the slot
// conflict check and the write atomically and return a ConflictError if the
// (technician, date, time) slot is already taken.
type AppointmentStore interface {
	Create(appt *models.Appointment) error
	Update(appt *models.Appointment) error
	Delete(id uint) error
	FindByID(id uint) (*models.Appointment, error)
	FindAll() ([]models.Appointment, error)
	FindByCustomer(customerID string) ([]models.Appointment, error)
	FindByTechnician(technicianID uint) ([]models.Appointment, error)
	FindByDate(date string) ([]models.Appointment, error)
	FindByTechnicianAndDate(technicianID uint, date string) ([]models.Appointment, error)
	SlotTaken(technicianID uint, date, timeOfDay string, excludeID uint) (bool, error)
}

// OTPIssuer manages one-time confirmation codes keyed by contact address.
// Generate overwrites any outstanding challenge for the address. Validate
// consumes the challenge on success and leaves it in place on a mismatch.
type OTPIssuer interface {
	Generate(email string) (string, error)
	Validate(email, code string) (bool, error)
}

// Mailer delivers booking mail. Delivery is out-of-band and best effort.
type Mailer interface {
	Send(to, subject, body string) error
}

// CreateInput carries a booking request.
type CreateInput struct {
	CustomerID        string   `json:"customer_id"`
	ServiceID         uint     `json:"service_id"`
	TechnicianID      uint     `json:"technician_id"`
	AppointmentDate   string   `json:"appointment_date"`
	AppointmentTime   string   `json:"appointment_time"`
	ServiceType       string   `json:"service_type"`
	Notes             string   `json:"notes"`
	CustomerPhone     string   `json:"customer_phone"`
	CustomerEmail     string   `json:"customer_email"`
	TotalAmount       *float64 `json:"total_amount"`
	LoyaltyPointsUsed *int     `json:"loyalty_points_used"`
	LoyaltyDiscount   *float64 `json:"loyalty_discount"`
}

// UpdateInput carries a partial update. Nil fields are left untouched.
type UpdateInput struct {
	CustomerID        *string  `json:"customer_id"`
	ServiceID         *uint    `json:"service_id"`
	TechnicianID      *uint    `json:"technician_id"`
	AppointmentDate   *string  `json:"appointment_date"`
	AppointmentTime   *string  `json:"appointment_time"`
	ServiceType       *string  `json:"service_type"`
	Status            *string  `json:"status"`
	Notes             *string  `json:"notes"`
	CustomerPhone     *string  `json:"customer_phone"`
	CustomerEmail     *string  `json:"customer_email"`
	TotalAmount       *float64 `json:"total_amount"`
	LoyaltyPointsUsed *int     `json:"loyalty_points_used"`
	LoyaltyDiscount   *float64 `json:"loyalty_discount"`
	OTPVerified       *bool    `json:"otp_verified"`
}
