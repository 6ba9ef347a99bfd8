package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turnero/internal/db"
	"turnero/internal/entities"
	apperrors "turnero/internal/errors"
)

// In-memory stores standing in for the SQL repositories.

type fakeProviderStore struct {
	byName map[string]*db.Provider
}

func (f *fakeProviderStore) GetByName(name string) (*db.Provider, error) {
	if p, ok := f.byName[name]; ok {
		return p, nil
	}
	return nil, apperrors.ErrNotFound(fmt.Sprintf("provider with name %s not found", name))
}

type fakeClientStore struct {
	byEmail map[string]*db.Client
}

func (f *fakeClientStore) GetByEmail(email string) (*db.Client, error) {
	if c, ok := f.byEmail[email]; ok {
		return c, nil
	}
	return nil, apperrors.ErrNotFound(fmt.Sprintf("client with email %s not found", email))
}

type fakeAvailabilityStore struct {
	windows []db.Availability
	nextID  int
}

func (f *fakeAvailabilityStore) Create(providerID int, date, startTime, endTime string) (*db.Availability, error) {
	f.nextID++
	a := db.Availability{ID: f.nextID, ProviderID: providerID, Date: date, StartTime: startTime, EndTime: endTime}
	f.windows = append(f.windows, a)
	return &a, nil
}

func (f *fakeAvailabilityStore) ListForProviderAndDate(providerID int, date string) ([]db.Availability, error) {
	var out []db.Availability
	for _, w := range f.windows {
		if w.ProviderID == providerID && w.Date == date {
			out = append(out, w)
		}
	}
	return out, nil
}

type fakeReservationStore struct {
	reservations []db.Reservation
	nextID       int
	clock        func() time.Time
}

func (f *fakeReservationStore) FindConfirmedConflict(providerID int, date, timeSlot string) (*db.Reservation, error) {
	for i := range f.reservations {
		res := f.reservations[i]
		if res.ProviderID == providerID && res.Date == date && res.TimeSlot == timeSlot && res.Confirmed {
			return &res, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationStore) ListForProviderAndDate(providerID int, date string) ([]db.Reservation, error) {
	var out []db.Reservation
	for _, res := range f.reservations {
		if res.ProviderID == providerID && res.Date == date {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationStore) Create(providerID, clientID int, date, timeSlot string) (*db.Reservation, error) {
	f.nextID++
	res := db.Reservation{
		ID:         f.nextID,
		ProviderID: providerID,
		ClientID:   clientID,
		Date:       date,
		TimeSlot:   timeSlot,
		CreatedAt:  f.clock(),
	}
	f.reservations = append(f.reservations, res)
	return &res, nil
}

// Confirm mirrors the partial unique index: promoting a hold fails when a
// different reservation already holds the slot confirmed.
func (f *fakeReservationStore) Confirm(id int) (*db.Reservation, error) {
	for i := range f.reservations {
		if f.reservations[i].ID != id {
			continue
		}
		for j := range f.reservations {
			r := f.reservations[j]
			if r.ID != id && r.Confirmed &&
				r.ProviderID == f.reservations[i].ProviderID &&
				r.Date == f.reservations[i].Date &&
				r.TimeSlot == f.reservations[i].TimeSlot {
				return nil, apperrors.ErrConflict("this time slot is already confirmed for another reservation")
			}
		}
		f.reservations[i].Confirmed = true
		res := f.reservations[i]
		return &res, nil
	}
	return nil, apperrors.ErrNotFound(fmt.Sprintf("reservation with id %d not found", id))
}

var testNow = time.Date(2024, 8, 12, 12, 0, 0, 0, time.Local)

func newTestService() (*ScheduleService, *fakeReservationStore, *fakeAvailabilityStore) {
	providers := &fakeProviderStore{byName: map[string]*db.Provider{
		"Dr. Jekyll": {ID: 1, Name: "Dr. Jekyll"},
	}}
	clients := &fakeClientStore{byEmail: map[string]*db.Client{
		"john@example.com": {ID: 1, Name: "John Doe", Email: "john@example.com"},
	}}
	availabilities := &fakeAvailabilityStore{}
	reservations := &fakeReservationStore{clock: func() time.Time { return testNow }}

	svc := NewScheduleService(providers, clients, availabilities, reservations)
	svc.now = func() time.Time { return testNow }
	return svc, reservations, availabilities
}

func errStatus(t *testing.T, err error) int {
	t.Helper()
	var httpErr *apperrors.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected HTTPError, got %v", err)
	return httpErr.Code
}

func TestCreateAvailability(t *testing.T) {
	svc, _, availabilities := newTestService()

	a, err := svc.CreateAvailability("Dr. Jekyll", entities.AvailabilityRequest{
		Date: "2024-08-13", StartTime: "08:00", EndTime: "15:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, a.ProviderID)
	assert.Equal(t, "08:00", a.StartTime)
	assert.Len(t, availabilities.windows, 1)
}

func TestCreateAvailabilityUnknownProvider(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateAvailability("Dr. Moreau", entities.AvailabilityRequest{
		Date: "2024-08-13", StartTime: "08:00", EndTime: "15:00",
	})
	assert.Equal(t, http.StatusNotFound, errStatus(t, err))
}

func TestCreateAvailabilityValidation(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []entities.AvailabilityRequest{
		{Date: "13/08/2024", StartTime: "08:00", EndTime: "15:00"},
		{Date: "2024-08-13", StartTime: "8am", EndTime: "15:00"},
		{Date: "2024-08-13", StartTime: "08:00", EndTime: "25:00"},
		{Date: "2024-08-13", StartTime: "15:00", EndTime: "08:00"},
		{Date: "2024-08-13", StartTime: "08:00", EndTime: "08:00"},
	}
	for _, req := range tests {
		_, err := svc.CreateAvailability("Dr. Jekyll", req)
		assert.Equal(t, http.StatusBadRequest, errStatus(t, err), "%+v", req)
	}
}

func TestCreateReservationSucceedsUnconfirmed(t *testing.T) {
	svc, reservations, _ := newTestService()

	res, err := svc.CreateReservation(entities.ReservationRequest{
		Date: "2024-08-15", TimeSlot: "09:00", ProviderName: "Dr. Jekyll", ClientEmail: "john@example.com",
	})
	require.NoError(t, err)
	assert.False(t, res.Confirmed)
	assert.Equal(t, testNow, res.CreatedAt)
	assert.Len(t, reservations.reservations, 1)
}

func TestCreateReservationUnknownProvider(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateReservation(entities.ReservationRequest{
		Date: "2024-08-15", TimeSlot: "09:00", ProviderName: "Dr. Moreau", ClientEmail: "john@example.com",
	})
	assert.Equal(t, http.StatusNotFound, errStatus(t, err))
}

func TestCreateReservationUnknownClient(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateReservation(entities.ReservationRequest{
		Date: "2024-08-15", TimeSlot: "09:00", ProviderName: "Dr. Jekyll", ClientEmail: "nobody@example.com",
	})
	assert.Equal(t, http.StatusNotFound, errStatus(t, err))
}

func TestCreateReservationAdvanceNotice(t *testing.T) {
	svc, _, _ := newTestService()

	// Exactly 24 hours ahead is allowed.
	_, err := svc.CreateReservation(entities.ReservationRequest{
		Date: "2024-08-13", TimeSlot: "12:00", ProviderName: "Dr. Jekyll", ClientEmail: "john@example.com",
	})
	assert.NoError(t, err)

	// A quarter hour short of 24 is not.
	_, err = svc.CreateReservation(entities.ReservationRequest{
		Date: "2024-08-13", TimeSlot: "11:45", ProviderName: "Dr. Jekyll", ClientEmail: "john@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, errStatus(t, err))

	// Same day, already past.
	_, err = svc.CreateReservation(entities.ReservationRequest{
		Date: "2024-08-12", TimeSlot: "09:00", ProviderName: "Dr. Jekyll", ClientEmail: "john@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, errStatus(t, err))
}

func TestCreateReservationConfirmedConflict(t *testing.T) {
	svc, reservations, _ := newTestService()

	reservations.reservations = append(reservations.reservations, db.Reservation{
		ID: 99, ProviderID: 1, ClientID: 2, Date: "2024-08-15", TimeSlot: "09:00",
		Confirmed: true, CreatedAt: testNow.Add(-2 * time.Hour),
	})
	reservations.nextID = 99

	_, err := svc.CreateReservation(entities.ReservationRequest{
		Date: "2024-08-15", TimeSlot: "09:00", ProviderName: "Dr. Jekyll", ClientEmail: "john@example.com",
	})
	assert.Equal(t, http.StatusConflict, errStatus(t, err))
}

// An unconfirmed hold is not a creation-time conflict: two clients can hold
// the same slot at once, and only the confirm step settles it.
func TestCreateReservationDuplicateUnconfirmedAllowed(t *testing.T) {
	svc, reservations, _ := newTestService()

	req := entities.ReservationRequest{
		Date: "2024-08-15", TimeSlot: "09:00", ProviderName: "Dr. Jekyll", ClientEmail: "john@example.com",
	}
	first, err := svc.CreateReservation(req)
	require.NoError(t, err)
	second, err := svc.CreateReservation(req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, reservations.reservations, 2)
	assert.False(t, reservations.reservations[0].Confirmed)
	assert.False(t, reservations.reservations[1].Confirmed)
}

func TestConfirmReservation(t *testing.T) {
	svc, _, _ := newTestService()

	res, err := svc.CreateReservation(entities.ReservationRequest{
		Date: "2024-08-15", TimeSlot: "09:00", ProviderName: "Dr. Jekyll", ClientEmail: "john@example.com",
	})
	require.NoError(t, err)

	confirmed, err := svc.ConfirmReservation(res.ID)
	require.NoError(t, err)
	assert.True(t, confirmed.Confirmed)

	// Confirming again is a no-op success.
	confirmed, err = svc.ConfirmReservation(res.ID)
	require.NoError(t, err)
	assert.True(t, confirmed.Confirmed)
}

func TestConfirmReservationNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ConfirmReservation(42)
	assert.Equal(t, http.StatusNotFound, errStatus(t, err))
}

// Of two holds on the same slot only one can be confirmed; the second
// confirm hits the confirmed-uniqueness constraint.
func TestConfirmReservationSiblingConflict(t *testing.T) {
	svc, _, _ := newTestService()

	req := entities.ReservationRequest{
		Date: "2024-08-15", TimeSlot: "09:00", ProviderName: "Dr. Jekyll", ClientEmail: "john@example.com",
	}
	first, err := svc.CreateReservation(req)
	require.NoError(t, err)
	second, err := svc.CreateReservation(req)
	require.NoError(t, err)

	_, err = svc.ConfirmReservation(first.ID)
	require.NoError(t, err)

	_, err = svc.ConfirmReservation(second.ID)
	assert.Equal(t, http.StatusConflict, errStatus(t, err))
}

func TestGetAvailableSlotsUnknownProvider(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetAvailableSlots("Dr. Moreau", "2024-08-13")
	assert.Equal(t, http.StatusNotFound, errStatus(t, err))
}

func TestGetAvailableSlotsExcludesReserved(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateAvailability("Dr. Jekyll", entities.AvailabilityRequest{
		Date: "2024-08-15", StartTime: "08:00", EndTime: "15:00",
	})
	require.NoError(t, err)

	res, err := svc.CreateReservation(entities.ReservationRequest{
		Date: "2024-08-15", TimeSlot: "09:00", ProviderName: "Dr. Jekyll", ClientEmail: "john@example.com",
	})
	require.NoError(t, err)
	_, err = svc.ConfirmReservation(res.ID)
	require.NoError(t, err)

	slots, err := svc.GetAvailableSlots("Dr. Jekyll", "2024-08-15")
	require.NoError(t, err)
	require.Len(t, slots, 27)
	for _, s := range slots {
		assert.NotEqual(t, "09:00-09:15", s.Slot)
	}
}

func TestGetAvailableSlotsEmptyWithoutWindows(t *testing.T) {
	svc, _, _ := newTestService()

	slots, err := svc.GetAvailableSlots("Dr. Jekyll", "2024-08-15")
	require.NoError(t, err)
	assert.Empty(t, slots)
}
