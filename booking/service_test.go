package booking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beautyplaza/beautyplaza-api/models"
)

type fakeDirectory struct {
	customers   map[string]*models.User
	services    map[uint]*models.BeautyService
	technicians map[uint]*models.Technician
}

func (d *fakeDirectory) FindCustomer(id string) (*models.User, error) {
	if u, ok := d.customers[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, NewNotFound("Customer", "id", id)
}

func (d *fakeDirectory) FindService(id uint) (*models.BeautyService, error) {
	if s, ok := d.services[id]; ok {
		c := *s
		return &c, nil
	}
	return nil, NewNotFound("Service", "id", id)
}

func (d *fakeDirectory) FindTechnician(id uint) (*models.Technician, error) {
	if t, ok := d.technicians[id]; ok {
		c := *t
		return &c, nil
	}
	return nil, NewNotFound("Technician", "id", id)
}

type fakeStore struct {
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{appointments: make(map[uint]*models.Appointment), nextID: 1}
}

func (s *fakeStore) Create(appt *models.Appointment) error {
	taken, _ := s.SlotTaken(appt.TechnicianID, appt.AppointmentDate, appt.AppointmentTime, 0)
	if taken {
		return &ConflictError{Message: "Technician already has an appointment at this date and time."}
	}
	appt.ID = s.nextID
	s.nextID++
	c := *appt
	s.appointments[appt.ID] = &c
	return nil
}

func (s *fakeStore) Update(appt *models.Appointment) error {
	if _, ok := s.appointments[appt.ID]; !ok {
		return NewNotFound("Appointment", "id", appt.ID)
	}
	taken, _ := s.SlotTaken(appt.TechnicianID, appt.AppointmentDate, appt.AppointmentTime, appt.ID)
	if taken {
		return &ConflictError{Message: "Technician already has an appointment at this updated date and time."}
	}
	c := *appt
	s.appointments[appt.ID] = &c
	return nil
}

func (s *fakeStore) Delete(id uint) error {
	if _, ok := s.appointments[id]; !ok {
		return NewNotFound("Appointment", "id", id)
	}
	delete(s.appointments, id)
	return nil
}

func (s *fakeStore) FindByID(id uint) (*models.Appointment, error) {
	if a, ok := s.appointments[id]; ok {
		c := *a
		return &c, nil
	}
	return nil, NewNotFound("Appointment", "id", id)
}

func (s *fakeStore) FindAll() ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range s.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (s *fakeStore) FindByCustomer(customerID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range s.appointments {
		if a.CustomerID == customerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeStore) FindByTechnician(technicianID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range s.appointments {
		if a.TechnicianID == technicianID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeStore) FindByDate(date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range s.appointments {
		if a.AppointmentDate == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeStore) FindByTechnicianAndDate(technicianID uint, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range s.appointments {
		if a.TechnicianID == technicianID && a.AppointmentDate == date {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeStore) SlotTaken(technicianID uint, date, timeOfDay string, excludeID uint) (bool, error) {
	for _, a := range s.appointments {
		if a.ID == excludeID {
			continue
		}
		if a.TechnicianID == technicianID && a.AppointmentDate == date && a.AppointmentTime == timeOfDay {
			return true, nil
		}
	}
	return false, nil
}

type fakeOTP struct {
	codes  map[string]string
	issued int
}

func newFakeOTP() *fakeOTP {
	return &fakeOTP{codes: make(map[string]string)}
}

func (o *fakeOTP) Generate(email string) (string, error) {
	o.issued++
	code := fmt.Sprintf("%06d", o.issued)
	o.codes[email] = code
	return code, nil
}

func (o *fakeOTP) Validate(email, code string) (bool, error) {
	stored, ok := o.codes[email]
	if !ok || stored != code {
		return false, nil
	}
	delete(o.codes, email)
	return true, nil
}

type fakeMailer struct {
	sent []string
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, to)
	return nil
}

func newTestService() (*Service, *fakeStore, *fakeOTP, *fakeMailer) {
	directory := &fakeDirectory{
		customers: map[string]*models.User{
			"cust-1": {ID: "cust-1", Email: "jane@example.com", Phone: "555-0100", FullName: "Jane Doe", Role: models.RoleCustomer},
			"cust-2": {ID: "cust-2", Email: "amy@example.com", Phone: "555-0101", FullName: "Amy Lee", Role: models.RoleCustomer},
		},
		services: map[uint]*models.BeautyService{
			1: {ID: 1, Name: "Classic Facial", Price: 75, Duration: 60, IsActive: true},
			2: {ID: 2, Name: "Deluxe Manicure", Price: 40, Duration: 45, IsActive: true},
		},
		technicians: map[uint]*models.Technician{
			1: {ID: 1, Name: "Maria", IsAvailable: true},
			2: {ID: 2, Name: "Priya", IsAvailable: true},
			3: {ID: 3, Name: "Lena", IsAvailable: false},
		},
	}
	store := newFakeStore()
	otp := newFakeOTP()
	mailer := &fakeMailer{}
	return NewService(directory, store, otp, mailer), store, otp, mailer
}

func validCreateInput() CreateInput {
	return CreateInput{
		CustomerID:      "cust-1",
		ServiceID:       1,
		TechnicianID:    1,
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:00",
		ServiceType:     "IN_STORE",
	}
}

func TestCreateAppointment(t *testing.T) {
	svc, store, _, mailer := newTestService()

	appt, err := svc.Create(validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.False(t, appt.OTPVerified)
	assert.Equal(t, 75.0, appt.TotalAmount)
	// Contact snapshot falls back to the customer record
	assert.Equal(t, "jane@example.com", appt.CustomerEmail)
	assert.Equal(t, "555-0100", appt.CustomerPhone)

	stored, err := store.FindByID(appt.ID)
	require.NoError(t, err)
	assert.Equal(t, appt.AppointmentTime, stored.AppointmentTime)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jane@example.com", mailer.sent[0])
}

func TestCreateAppointmentContactOverride(t *testing.T) {
	svc, _, _, mailer := newTestService()

	in := validCreateInput()
	in.CustomerEmail = "other@example.com"
	in.CustomerPhone = "555-9999"

	appt, err := svc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "other@example.com", appt.CustomerEmail)
	assert.Equal(t, "555-9999", appt.CustomerPhone)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "other@example.com", mailer.sent[0])
}

func TestCreateAppointmentTotalOverride(t *testing.T) {
	svc, _, _, _ := newTestService()

	amount := 50.0
	in := validCreateInput()
	in.TotalAmount = &amount

	appt, err := svc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, 50.0, appt.TotalAmount)
}

func TestCreateAppointmentUnknownCustomer(t *testing.T) {
	svc, _, _, _ := newTestService()

	in := validCreateInput()
	in.CustomerID = "nobody"

	_, err := svc.Create(in)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Customer not found with id: nobody")
}

func TestCreateAppointmentUnavailableTechnician(t *testing.T) {
	svc, _, _, _ := newTestService()

	in := validCreateInput()
	in.TechnicianID = 3

	_, err := svc.Create(in)
	require.Error(t, err)
	assert.True(t, IsInvalid(err))
	assert.Contains(t, err.Error(), "not available")
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Create(validCreateInput())
	require.NoError(t, err)

	in := validCreateInput()
	in.CustomerID = "cust-2"
	_, err = svc.Create(in)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestCreateAppointmentConflictKeepsOutstandingChallenge(t *testing.T) {
	svc, _, otp, mailer := newTestService()

	appt, err := svc.Create(validCreateInput())
	require.NoError(t, err)
	require.Equal(t, 1, otp.issued)
	code := otp.codes[appt.CustomerEmail]

	// A rejected booking for the same address issues no new challenge
	in := validCreateInput()
	_, err = svc.Create(in)
	require.Error(t, err)
	require.True(t, IsConflict(err))
	assert.Equal(t, 1, otp.issued)
	assert.Len(t, mailer.sent, 1)

	// The original challenge still confirms the first appointment
	_, err = svc.VerifyOTP(appt.ID, code)
	assert.NoError(t, err)
}

func TestCreateAppointmentDifferentTechnicianSameSlot(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Create(validCreateInput())
	require.NoError(t, err)

	in := validCreateInput()
	in.TechnicianID = 2
	_, err = svc.Create(in)
	assert.NoError(t, err)
}

func TestCreateAppointmentInvalidInput(t *testing.T) {
	svc, _, _, _ := newTestService()

	in := validCreateInput()
	in.AppointmentDate = "15-09-2026"
	_, err := svc.Create(in)
	require.Error(t, err)
	assert.True(t, IsInvalid(err))

	in = validCreateInput()
	in.AppointmentTime = "10am"
	_, err = svc.Create(in)
	require.Error(t, err)
	assert.True(t, IsInvalid(err))

	in = validCreateInput()
	in.ServiceType = "TELEPATHIC"
	_, err = svc.Create(in)
	require.Error(t, err)
	assert.True(t, IsInvalid(err))
}

func TestUpdateAppointmentPartial(t *testing.T) {
	svc, _, _, _ := newTestService()

	appt, err := svc.Create(validCreateInput())
	require.NoError(t, err)

	notes := "bring own nail polish"
	updated, err := svc.Update(appt.ID, UpdateInput{Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, notes, updated.Notes)
	// Untouched fields survive
	assert.Equal(t, appt.AppointmentDate, updated.AppointmentDate)
	assert.Equal(t, appt.AppointmentTime, updated.AppointmentTime)
	assert.Equal(t, appt.TechnicianID, updated.TechnicianID)
	assert.Equal(t, appt.TotalAmount, updated.TotalAmount)
}

func TestUpdateAppointmentServiceChangeRecomputesTotal(t *testing.T) {
	svc, _, _, _ := newTestService()

	appt, err := svc.Create(validCreateInput())
	require.NoError(t, err)
	require.Equal(t, 75.0, appt.TotalAmount)

	newService := uint(2)
	updated, err := svc.Update(appt.ID, UpdateInput{ServiceID: &newService})
	require.NoError(t, err)
	assert.Equal(t, 40.0, updated.TotalAmount)
}

func TestUpdateAppointmentRescheduleConflict(t *testing.T) {
	svc, store, _, _ := newTestService()

	_, err := svc.Create(validCreateInput())
	require.NoError(t, err)

	in := validCreateInput()
	in.CustomerID = "cust-2"
	in.AppointmentTime = "11:00"
	second, err := svc.Create(in)
	require.NoError(t, err)

	// Moving the second booking onto the first one's slot must fail
	newTime := "10:00"
	_, err = svc.Update(second.ID, UpdateInput{AppointmentTime: &newTime})
	require.Error(t, err)
	assert.True(t, IsConflict(err))

	// The stored appointment is untouched
	stored, err := store.FindByID(second.ID)
	require.NoError(t, err)
	assert.Equal(t, "11:00", stored.AppointmentTime)
}

func TestUpdateAppointmentRescheduleOwnSlot(t *testing.T) {
	svc, _, _, _ := newTestService()

	appt, err := svc.Create(validCreateInput())
	require.NoError(t, err)

	// Re-submitting the current slot is not a conflict with itself
	date := appt.AppointmentDate
	timeOfDay := appt.AppointmentTime
	_, err = svc.Update(appt.ID, UpdateInput{AppointmentDate: &date, AppointmentTime: &timeOfDay})
	assert.NoError(t, err)
}

func TestUpdateStatus(t *testing.T) {
	svc, _, _, _ := newTestService()

	appt, err := svc.Create(validCreateInput())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(appt.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	_, err = svc.UpdateStatus(appt.ID, "bogus")
	require.Error(t, err)
	assert.True(t, IsInvalid(err))
	assert.Equal(t, "Invalid appointment status: bogus", err.Error())
}

func TestVerifyOTP(t *testing.T) {
	svc, store, otp, _ := newTestService()

	appt, err := svc.Create(validCreateInput())
	require.NoError(t, err)
	code := otp.codes[appt.CustomerEmail]
	require.NotEmpty(t, code)

	verified, err := svc.VerifyOTP(appt.ID, code)
	require.NoError(t, err)
	assert.True(t, verified.OTPVerified)
	assert.Equal(t, models.StatusConfirmed, verified.Status)

	stored, err := store.FindByID(appt.ID)
	require.NoError(t, err)
	assert.True(t, stored.OTPVerified)
	assert.Equal(t, models.StatusConfirmed, stored.Status)
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, store, otp, _ := newTestService()

	appt, err := svc.Create(validCreateInput())
	require.NoError(t, err)

	_, err = svc.VerifyOTP(appt.ID, "000000")
	require.Error(t, err)
	assert.True(t, IsInvalid(err))

	// The appointment is unchanged and the challenge still stands
	stored, err := store.FindByID(appt.ID)
	require.NoError(t, err)
	assert.False(t, stored.OTPVerified)
	assert.Equal(t, models.StatusScheduled, stored.Status)

	code := otp.codes[appt.CustomerEmail]
	_, err = svc.VerifyOTP(appt.ID, code)
	assert.NoError(t, err)
}

func TestDeleteAppointment(t *testing.T) {
	svc, store, _, _ := newTestService()

	appt, err := svc.Create(validCreateInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(appt.ID))
	_, err = store.FindByID(appt.ID)
	assert.True(t, IsNotFound(err))

	err = svc.Delete(999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestListByCustomerUnknown(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.ListByCustomer("nobody")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestListByDateInvalid(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.ListByDate("not-a-date")
	require.Error(t, err)
	assert.True(t, IsInvalid(err))
}
