package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/beautyplaza/beautyplaza-api/db"
	"github.com/beautyplaza/beautyplaza-api/models"
	"github.com/beautyplaza/beautyplaza-api/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Check twice an hour for appointments starting within the next hour
	_, err := c.AddFunc("*/30 * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders finds confirmed appointments starting within
// the next hour and emails the contact on file.
func sendAppointmentReminders() {
	now := time.Now()
	today := now.Format("2006-01-02")
	windowStart := now.Format("15:04")
	windowEnd := now.Add(time.Hour).Format("15:04")

	// A window that crosses midnight would need tomorrow's date too;
	// the salon closes at 19:00 so that never happens in practice.
	var appointments []models.Appointment
	err := db.DB.Preload("Customer").Preload("Service").Preload("Technician").
		Where("status = ? AND appointment_date = ? AND appointment_time > ? AND appointment_time <= ?",
			models.StatusConfirmed, today, windowStart, windowEnd).
		Find(&appointments).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, appointment := range appointments {
		if appointment.CustomerEmail == "" {
			continue
		}
		if err := sendReminderEmail(&appointment); err != nil {
			log.Printf("Failed to send reminder for appointment %d: %v", appointment.ID, err)
			continue
		}
		log.Printf("Sent reminder for appointment %d to %s", appointment.ID, appointment.CustomerEmail)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(appointment *models.Appointment) error {
	serviceName := ""
	if appointment.Service != nil {
		serviceName = appointment.Service.Name
	}
	technicianName := ""
	if appointment.Technician != nil {
		technicianName = appointment.Technician.Name
	}
	customerName := ""
	if appointment.Customer != nil {
		customerName = appointment.Customer.FullName
	}

	subject := fmt.Sprintf("Reminder: Upcoming Appointment - %s", serviceName)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in the next hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Technician:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Beauty Plaza</p>
	`, customerName, serviceName, technicianName,
		appointment.AppointmentDate, appointment.AppointmentTime)

	return utils.SendEmail(appointment.CustomerEmail, subject, body)
}
