package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusPaid      AppointmentStatus = "PAID"
)

// ParseAppointmentStatus normalizes a status string to its canonical
// uppercase form.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(strings.ToUpper(s)) {
	case StatusScheduled:
		return StatusScheduled, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusPaid:
		return StatusPaid, nil
	default:
		return "", fmt.Errorf("Invalid appointment status: %s", s)
	}
}

type ServiceType string

const (
	ServiceInStore ServiceType = "IN_STORE"
	ServiceInHome  ServiceType = "IN_HOME"
)

func ParseServiceType(s string) (ServiceType, error) {
	switch ServiceType(strings.ToUpper(strings.ReplaceAll(s, "-", "_"))) {
	case ServiceInStore:
		return ServiceInStore, nil
	case ServiceInHome:
		return ServiceInHome, nil
	default:
		return "", fmt.Errorf("invalid service type: %s", s)
	}
}

// Appointment links one customer, one service and one technician to a
// date/time slot. Date and time are kept as validated "2006-01-02" and
// "15:04" strings so the composite unique index gives exact slot matching.
type Appointment struct {
	ID                uint              `json:"id" gorm:"primaryKey"`
	CustomerID        string            `json:"customer_id" gorm:"size:255;not null"`
	Customer          *User             `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ServiceID         uint              `json:"service_id" gorm:"not null"`
	Service           *BeautyService    `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	TechnicianID      uint              `json:"technician_id" gorm:"not null;uniqueIndex:idx_technician_slot"`
	Technician        *Technician       `json:"technician,omitempty" gorm:"foreignKey:TechnicianID"`
	AppointmentDate   string            `json:"appointment_date" gorm:"size:10;not null;uniqueIndex:idx_technician_slot"`
	AppointmentTime   string            `json:"appointment_time" gorm:"size:5;not null;uniqueIndex:idx_technician_slot"`
	ServiceType       ServiceType       `json:"service_type" gorm:"not null"`
	Status            AppointmentStatus `json:"status" gorm:"not null"`
	Notes             string            `json:"notes" gorm:"type:text"`
	CustomerPhone     string            `json:"customer_phone"`
	CustomerEmail     string            `json:"customer_email"`
	TotalAmount       float64           `json:"total_amount" gorm:"type:numeric(10,2)"`
	LoyaltyPointsUsed int               `json:"loyalty_points_used" gorm:"default:0"`
	LoyaltyDiscount   float64           `json:"loyalty_discount" gorm:"type:numeric(10,2);default:0"`
	OTPVerified       bool              `json:"otp_verified" gorm:"default:false"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	return nil
}
