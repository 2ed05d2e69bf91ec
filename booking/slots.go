package booking

import (
	"time"
)

// Business hours for slot listing. The listing is a display aid; the
// authoritative check at booking time is the exact slot match in the store.
const (
	OpeningTime = "09:00"
	ClosingTime = "19:00"
	SlotStride  = 30 * time.Minute

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ValidDate reports whether s is an ISO calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ValidTime reports whether s is a 24h "HH:MM" time of day.
func ValidTime(s string) bool {
	_, err := time.Parse(timeLayout, s)
	return err == nil
}

// enumerateSlots generates slot start times from opening (inclusive) to
// closing (exclusive) at the fixed stride.
func enumerateSlots() []string {
	open, _ := time.Parse(timeLayout, OpeningTime)
	close, _ := time.Parse(timeLayout, ClosingTime)

	var slots []string
	for t := open; t.Before(close); t = t.Add(SlotStride) {
		slots = append(slots, t.Format(timeLayout))
	}
	return slots
}

// AvailableSlots lists the bookable times for a technician on a date:
// every generated slot that no existing appointment occupies exactly.
func (s *Service) AvailableSlots(technicianID uint, date string) ([]string, error) {
	if _, err := s.directory.FindTechnician(technicianID); err != nil {
		return nil, err
	}
	if !ValidDate(date) {
		return nil, &InvalidError{Message: "invalid date, expected YYYY-MM-DD: " + date}
	}

	existing, err := s.store.FindByTechnicianAndDate(technicianID, date)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(existing))
	for _, appt := range existing {
		taken[appt.AppointmentTime] = true
	}

	var free []string
	for _, slot := range enumerateSlots() {
		if !taken[slot] {
			free = append(free, slot)
		}
	}
	return free, nil
}
