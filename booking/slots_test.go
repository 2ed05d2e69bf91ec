package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateSlots(t *testing.T) {
	slots := enumerateSlots()

	// 09:00 through 18:30 at a 30 minute stride
	require.Len(t, slots, 20)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "18:30", slots[len(slots)-1])
	assert.NotContains(t, slots, "19:00")
}

func TestAvailableSlotsFullDay(t *testing.T) {
	svc, _, _, _ := newTestService()

	slots, err := svc.AvailableSlots(1, "2026-09-15")
	require.NoError(t, err)
	assert.Len(t, slots, 20)
}

func TestAvailableSlotsExcludesBooked(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Create(validCreateInput())
	require.NoError(t, err)

	slots, err := svc.AvailableSlots(1, "2026-09-15")
	require.NoError(t, err)
	assert.Len(t, slots, 19)
	assert.NotContains(t, slots, "10:00")

	// Another technician's day is unaffected
	slots, err = svc.AvailableSlots(2, "2026-09-15")
	require.NoError(t, err)
	assert.Len(t, slots, 20)
}

func TestAvailableSlotsAgreeWithBooking(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Create(validCreateInput())
	require.NoError(t, err)

	slots, err := svc.AvailableSlots(1, "2026-09-15")
	require.NoError(t, err)

	// Every listed slot is actually bookable
	for _, slot := range slots {
		in := validCreateInput()
		in.AppointmentTime = slot
		_, err := svc.Create(in)
		assert.NoError(t, err, "slot %s was listed as free but booking failed", slot)
	}

	// And once they are all booked the day is full
	slots, err = svc.AvailableSlots(1, "2026-09-15")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestAvailableSlotsUnknownTechnician(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.AvailableSlots(99, "2026-09-15")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestAvailableSlotsBadDate(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.AvailableSlots(1, "next tuesday")
	require.Error(t, err)
	assert.True(t, IsInvalid(err))
}
