package booking

import (
	"fmt"
	"log"

	"github.com/beautyplaza/beautyplaza-api/models"
)

// Service is the booking orchestrator. All appointment mutation goes through
// it; the OTP issuer owns challenge lifecycle.
type Service struct {
	directory DirectoryLookup
	store     AppointmentStore
	otp       OTPIssuer
	mailer    Mailer
}

func NewService(directory DirectoryLookup, store AppointmentStore, otp OTPIssuer, mailer Mailer) *Service {
	return &Service{directory: directory, store: store, otp: otp, mailer: mailer}
}

// Create books a new appointment. It resolves the referenced entities,
// rejects unavailable technicians and occupied slots, issues an OTP challenge
// for the contact address and persists the appointment as SCHEDULED.
func (s *Service) Create(in CreateInput) (*models.Appointment, error) {
	customer, err := s.directory.FindCustomer(in.CustomerID)
	if err != nil {
		return nil, err
	}
	service, err := s.directory.FindService(in.ServiceID)
	if err != nil {
		return nil, err
	}
	technician, err := s.directory.FindTechnician(in.TechnicianID)
	if err != nil {
		return nil, err
	}

	if !technician.IsAvailable {
		return nil, &InvalidError{Message: "Technician is not available for bookings."}
	}

	if !ValidDate(in.AppointmentDate) {
		return nil, &InvalidError{Message: "invalid appointment date, expected YYYY-MM-DD: " + in.AppointmentDate}
	}
	if !ValidTime(in.AppointmentTime) {
		return nil, &InvalidError{Message: "invalid appointment time, expected HH:MM: " + in.AppointmentTime}
	}
	serviceType, err := models.ParseServiceType(in.ServiceType)
	if err != nil {
		return nil, &InvalidError{Message: err.Error()}
	}

	taken, err := s.store.SlotTaken(technician.ID, in.AppointmentDate, in.AppointmentTime, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &ConflictError{Message: "Technician already has an appointment at this date and time."}
	}

	appt := &models.Appointment{
		CustomerID:      customer.ID,
		ServiceID:       service.ID,
		TechnicianID:    technician.ID,
		AppointmentDate: in.AppointmentDate,
		AppointmentTime: in.AppointmentTime,
		ServiceType:     serviceType,
		Status:          models.StatusScheduled,
		Notes:           in.Notes,
		CustomerPhone:   in.CustomerPhone,
		CustomerEmail:   in.CustomerEmail,
		OTPVerified:     false,
	}
	if appt.CustomerPhone == "" {
		appt.CustomerPhone = customer.Phone
	}
	if appt.CustomerEmail == "" {
		appt.CustomerEmail = customer.Email
	}
	if in.TotalAmount != nil {
		appt.TotalAmount = *in.TotalAmount
	} else {
		appt.TotalAmount = service.Price
	}
	if in.LoyaltyPointsUsed != nil {
		appt.LoyaltyPointsUsed = *in.LoyaltyPointsUsed
	}
	if in.LoyaltyDiscount != nil {
		appt.LoyaltyDiscount = *in.LoyaltyDiscount
	}

	if err := s.store.Create(appt); err != nil {
		return nil, err
	}

	// Issued only once the row exists, so a rejected booking cannot
	// clobber an outstanding challenge for the same address.
	code, err := s.otp.Generate(appt.CustomerEmail)
	if err != nil {
		return nil, err
	}

	s.sendOTPMail(appt, service.Name, code)
	return appt, nil
}

// Update applies a partial update. Referenced entities are re-resolved when
// they change; a technician, date or time change re-runs the availability and
// conflict checks excluding this appointment's own id.
func (s *Service) Update(id uint, in UpdateInput) (*models.Appointment, error) {
	appt, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}

	if in.CustomerID != nil && *in.CustomerID != appt.CustomerID {
		customer, err := s.directory.FindCustomer(*in.CustomerID)
		if err != nil {
			return nil, err
		}
		appt.CustomerID = customer.ID
		appt.Customer = nil
	}

	if in.ServiceID != nil && *in.ServiceID != appt.ServiceID {
		service, err := s.directory.FindService(*in.ServiceID)
		if err != nil {
			return nil, err
		}
		appt.ServiceID = service.ID
		appt.Service = nil
		appt.TotalAmount = service.Price
	}

	technicianChanged := in.TechnicianID != nil && *in.TechnicianID != appt.TechnicianID
	dateChanged := in.AppointmentDate != nil && *in.AppointmentDate != appt.AppointmentDate
	timeChanged := in.AppointmentTime != nil && *in.AppointmentTime != appt.AppointmentTime

	if technicianChanged || dateChanged || timeChanged {
		newTechnicianID := appt.TechnicianID
		if technicianChanged {
			newTechnicianID = *in.TechnicianID
		}
		newDate := appt.AppointmentDate
		if dateChanged {
			if !ValidDate(*in.AppointmentDate) {
				return nil, &InvalidError{Message: "invalid appointment date, expected YYYY-MM-DD: " + *in.AppointmentDate}
			}
			newDate = *in.AppointmentDate
		}
		newTime := appt.AppointmentTime
		if timeChanged {
			if !ValidTime(*in.AppointmentTime) {
				return nil, &InvalidError{Message: "invalid appointment time, expected HH:MM: " + *in.AppointmentTime}
			}
			newTime = *in.AppointmentTime
		}

		technician, err := s.directory.FindTechnician(newTechnicianID)
		if err != nil {
			return nil, err
		}
		if !technician.IsAvailable {
			return nil, &InvalidError{Message: "Technician is not available for bookings."}
		}

		taken, err := s.store.SlotTaken(newTechnicianID, newDate, newTime, appt.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &ConflictError{Message: "Technician already has an appointment at this updated date and time."}
		}

		appt.TechnicianID = newTechnicianID
		appt.Technician = nil
		appt.AppointmentDate = newDate
		appt.AppointmentTime = newTime
	}

	if in.ServiceType != nil {
		serviceType, err := models.ParseServiceType(*in.ServiceType)
		if err != nil {
			return nil, &InvalidError{Message: err.Error()}
		}
		appt.ServiceType = serviceType
	}
	if in.Status != nil {
		status, err := models.ParseAppointmentStatus(*in.Status)
		if err != nil {
			return nil, &InvalidError{Message: err.Error()}
		}
		appt.Status = status
	}
	if in.Notes != nil {
		appt.Notes = *in.Notes
	}
	if in.CustomerPhone != nil {
		appt.CustomerPhone = *in.CustomerPhone
	}
	if in.CustomerEmail != nil {
		appt.CustomerEmail = *in.CustomerEmail
	}
	if in.TotalAmount != nil {
		appt.TotalAmount = *in.TotalAmount
	}
	if in.LoyaltyPointsUsed != nil {
		appt.LoyaltyPointsUsed = *in.LoyaltyPointsUsed
	}
	if in.LoyaltyDiscount != nil {
		appt.LoyaltyDiscount = *in.LoyaltyDiscount
	}
	if in.OTPVerified != nil {
		appt.OTPVerified = *in.OTPVerified
	}

	if err := s.store.Update(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// UpdateStatus sets the appointment status. Any of the five values is
// accepted, case-insensitively; transitions are not restricted.
func (s *Service) UpdateStatus(id uint, status string) (*models.Appointment, error) {
	appt, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	parsed, err := models.ParseAppointmentStatus(status)
	if err != nil {
		return nil, &InvalidError{Message: err.Error()}
	}
	appt.Status = parsed
	if err := s.store.Update(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// VerifyOTP validates the presented code against the appointment's contact
// address. Success sets otp_verified and forces the status to CONFIRMED in
// the same write; failure leaves the appointment unchanged.
func (s *Service) VerifyOTP(id uint, code string) (*models.Appointment, error) {
	appt, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	ok, err := s.otp.Validate(appt.CustomerEmail, code)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &InvalidError{Message: "invalid or expired OTP"}
	}
	appt.OTPVerified = true
	appt.Status = models.StatusConfirmed
	if err := s.store.Update(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Delete removes an appointment permanently.
func (s *Service) Delete(id uint) error {
	if _, err := s.store.FindByID(id); err != nil {
		return err
	}
	return s.store.Delete(id)
}

func (s *Service) GetByID(id uint) (*models.Appointment, error) {
	return s.store.FindByID(id)
}

func (s *Service) ListAll() ([]models.Appointment, error) {
	return s.store.FindAll()
}

// ListByCustomer validates the customer exists before querying, so an unknown
// id reports NotFound rather than an empty list.
func (s *Service) ListByCustomer(customerID string) ([]models.Appointment, error) {
	if _, err := s.directory.FindCustomer(customerID); err != nil {
		return nil, err
	}
	return s.store.FindByCustomer(customerID)
}

func (s *Service) ListByTechnician(technicianID uint) ([]models.Appointment, error) {
	if _, err := s.directory.FindTechnician(technicianID); err != nil {
		return nil, err
	}
	return s.store.FindByTechnician(technicianID)
}

func (s *Service) ListByDate(date string) ([]models.Appointment, error) {
	if !ValidDate(date) {
		return nil, &InvalidError{Message: "invalid date, expected YYYY-MM-DD: " + date}
	}
	return s.store.FindByDate(date)
}

func (s *Service) sendOTPMail(appt *models.Appointment, serviceName, code string) {
	if s.mailer == nil {
		return
	}
	body := fmt.Sprintf(`
		<p>Dear customer,</p>
		<p>Your appointment for <strong>%s</strong> on %s at %s has been scheduled.</p>
		<p>Your confirmation code is: <strong>%s</strong></p>
		<p>The code expires in 5 minutes.</p>
		<p>Best regards,</p>
		<p>Beauty Plaza</p>
	`, serviceName, appt.AppointmentDate, appt.AppointmentTime, code)
	if err := s.mailer.Send(appt.CustomerEmail, "Confirm your Beauty Plaza appointment", body); err != nil {
		log.Printf("Failed to send OTP email for appointment %d: %v", appt.ID, err)
	}
}
