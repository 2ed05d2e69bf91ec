package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/beautyplaza/beautyplaza-api/booking"
	"github.com/beautyplaza/beautyplaza-api/models"
)

// AppointmentRepository implements booking.AppointmentStore. Writes run the
// slot check and the mutation inside one transaction with the conflicting
// rows locked; the unique index on (technician_id, appointment_date,
// appointment_time) backstops races the row lock cannot see.
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(appt *models.Appointment) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		taken, err := slotTakenLocked(tx, appt.TechnicianID, appt.AppointmentDate, appt.AppointmentTime, 0)
		if err != nil {
			return err
		}
		if taken {
			return &booking.ConflictError{Message: "Technician already has an appointment at this date and time."}
		}
		return tx.Create(appt).Error
	})
	return translateDuplicate(err)
}

func (r *AppointmentRepository) Update(appt *models.Appointment) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		taken, err := slotTakenLocked(tx, appt.TechnicianID, appt.AppointmentDate, appt.AppointmentTime, appt.ID)
		if err != nil {
			return err
		}
		if taken {
			return &booking.ConflictError{Message: "Technician already has an appointment at this updated date and time."}
		}
		return tx.Save(appt).Error
	})
	return translateDuplicate(err)
}

func (r *AppointmentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Appointment{}, id).Error
}

func (r *AppointmentRepository) FindByID(id uint) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.Preload("Customer").Preload("Service").Preload("Technician").
		First(&appt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, booking.NewNotFound("Appointment", "id", id)
		}
		return nil, err
	}
	return &appt, nil
}

func (r *AppointmentRepository) FindAll() ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Preload("Customer").Preload("Service").Preload("Technician").
		Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepository) FindByCustomer(customerID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Preload("Service").Preload("Technician").
		Where("customer_id = ?", customerID).Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepository) FindByTechnician(technicianID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Preload("Customer").Preload("Service").
		Where("technician_id = ?", technicianID).Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepository) FindByDate(date string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Preload("Customer").Preload("Service").Preload("Technician").
		Where("appointment_date = ?", date).Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepository) FindByTechnicianAndDate(technicianID uint, date string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("technician_id = ? AND appointment_date = ?", technicianID, date).
		Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepository) SlotTaken(technicianID uint, date, timeOfDay string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&models.Appointment{}).
		Where("technician_id = ? AND appointment_date = ? AND appointment_time = ?", technicianID, date, timeOfDay)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// slotTakenLocked checks the slot inside a transaction, locking any matching
// rows so a concurrent reschedule of the occupying appointment cannot slip
// past the check.
func slotTakenLocked(tx *gorm.DB, technicianID uint, date, timeOfDay string, excludeID uint) (bool, error) {
	var existing models.Appointment
	err := tx.Raw(`
		SELECT id
		FROM appointments
		WHERE technician_id = ? AND appointment_date = ? AND appointment_time = ? AND id <> ?
		FOR UPDATE
		LIMIT 1
	`, technicianID, date, timeOfDay, excludeID).Scan(&existing).Error
	if err != nil {
		return false, err
	}
	return existing.ID != 0, nil
}

func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &booking.ConflictError{Message: "Technician already has an appointment at this date and time."}
	}
	return err
}
