package service

import (
	"time"

	"turnero/internal/db"
	"turnero/internal/entities"
	apperrors "turnero/internal/errors"
	"turnero/internal/utils"
)

// Store interfaces implemented by the repositories. The service only
// depends on these, so tests can substitute in-memory fakes.

type ProviderStore interface {
	GetByName(name string) (*db.Provider, error)
}

type ClientStore interface {
	GetByEmail(email string) (*db.Client, error)
}

type AvailabilityStore interface {
	Create(providerID int, date, startTime, endTime string) (*db.Availability, error)
	ListForProviderAndDate(providerID int, date string) ([]db.Availability, error)
}

type ReservationStore interface {
	FindConfirmedConflict(providerID int, date, timeSlot string) (*db.Reservation, error)
	ListForProviderAndDate(providerID int, date string) ([]db.Reservation, error)
	Create(providerID, clientID int, date, timeSlot string) (*db.Reservation, error)
	Confirm(id int) (*db.Reservation, error)
}

type ScheduleService struct {
	providers      ProviderStore
	clients        ClientStore
	availabilities AvailabilityStore
	reservations   ReservationStore
	now            func() time.Time
}

func NewScheduleService(providers ProviderStore, clients ClientStore, availabilities AvailabilityStore, reservations ReservationStore) *ScheduleService {
	return &ScheduleService{
		providers:      providers,
		clients:        clients,
		availabilities: availabilities,
		reservations:   reservations,
		now:            time.Now,
	}
}

// CreateAvailability records a new open window for the provider. Windows
// are accepted as declared; overlaps with existing windows are allowed.
func (s *ScheduleService) CreateAvailability(providerName string, req entities.AvailabilityRequest) (*db.Availability, error) {
	provider, err := s.providers.GetByName(providerName)
	if err != nil {
		return nil, err
	}
	if err := utils.ParseDate(req.Date); err != nil {
		return nil, err
	}
	start, err := utils.TimeToMinutes(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := utils.TimeToMinutes(req.EndTime)
	if err != nil {
		return nil, err
	}
	if start >= end {
		return nil, apperrors.ErrInvalidRequest("startTime must be before endTime")
	}
	return s.availabilities.Create(provider.ID, req.Date, req.StartTime, req.EndTime)
}

// GetAvailableSlots lists the provider's bookable slots for a date. A slot
// is excluded while a confirmed reservation or an unconfirmed reservation
// inside its hold occupies it, or once its start time has passed.
func (s *ScheduleService) GetAvailableSlots(providerName, date string) ([]entities.AvailableSlot, error) {
	provider, err := s.providers.GetByName(providerName)
	if err != nil {
		return nil, err
	}
	windows, err := s.availabilities.ListForProviderAndDate(provider.ID, date)
	if err != nil {
		return nil, err
	}
	reservations, err := s.reservations.ListForProviderAndDate(provider.ID, date)
	if err != nil {
		return nil, err
	}
	return buildAvailableSlots(windows, reservations, s.now()), nil
}

// CreateReservation places an unconfirmed hold on a slot. Only confirmed
// reservations count as conflicts here, so two clients can hold the same
// slot at once; the confirm step settles who keeps it.
func (s *ScheduleService) CreateReservation(req entities.ReservationRequest) (*db.Reservation, error) {
	provider, err := s.providers.GetByName(req.ProviderName)
	if err != nil {
		return nil, err
	}
	client, err := s.clients.GetByEmail(req.ClientEmail)
	if err != nil {
		return nil, err
	}

	hours, err := utils.HoursUntil(req.Date, req.TimeSlot, s.now())
	if err != nil {
		return nil, err
	}
	if hours < minAdvanceHours {
		return nil, apperrors.ErrInvalidRequest("reservations must be made at least 24 hours in advance")
	}

	conflict, err := s.reservations.FindConfirmedConflict(provider.ID, req.Date, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, apperrors.ErrConflict("this time slot is already reserved")
	}

	return s.reservations.Create(provider.ID, client.ID, req.Date, req.TimeSlot)
}

// ConfirmReservation promotes a reservation to confirmed. Repeat confirms
// are no-op successes; an unknown id is a not-found error.
func (s *ScheduleService) ConfirmReservation(id int) (*db.Reservation, error) {
	return s.reservations.Confirm(id)
}
