package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"turnero/internal/db"
	apperrors "turnero/internal/errors"
)

type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

// FindConfirmedConflict returns the confirmed reservation occupying the
// given provider/date/slot, or nil if none exists. Unconfirmed holds are
// deliberately not considered here.
func (r *ReservationRepository) FindConfirmedConflict(providerID int, date, timeSlot string) (*db.Reservation, error) {
	var res db.Reservation
	err := r.DB.QueryRow(`
		SELECT id, provider_id, client_id, date, time_slot, confirmed, created_at
		FROM reservations
		WHERE provider_id = $1 AND date = $2 AND time_slot = $3 AND confirmed`,
		providerID, date, timeSlot,
	).Scan(&res.ID, &res.ProviderID, &res.ClientID, &res.Date, &res.TimeSlot, &res.Confirmed, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying confirmed conflict: %w", err)
	}
	return &res, nil
}

func (r *ReservationRepository) ListForProviderAndDate(providerID int, date string) ([]db.Reservation, error) {
	rows, err := r.DB.Query(`
		SELECT id, provider_id, client_id, date, time_slot, confirmed, created_at
		FROM reservations
		WHERE provider_id = $1 AND date = $2
		ORDER BY id`,
		providerID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying reservations: %w", err)
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		var res db.Reservation
		if err := rows.Scan(&res.ID, &res.ProviderID, &res.ClientID, &res.Date, &res.TimeSlot, &res.Confirmed, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating reservation rows: %w", err)
	}
	return reservations, nil
}

// Create inserts a new unconfirmed reservation. The database assigns
// created_at so callers cannot skew the hold window.
func (r *ReservationRepository) Create(providerID, clientID int, date, timeSlot string) (*db.Reservation, error) {
	res := db.Reservation{
		ProviderID: providerID,
		ClientID:   clientID,
		Date:       date,
		TimeSlot:   timeSlot,
	}
	err := r.DB.QueryRow(`
		INSERT INTO reservations (provider_id, client_id, date, time_slot)
		VALUES ($1, $2, $3, $4)
		RETURNING id, confirmed, created_at`,
		providerID, clientID, date, timeSlot,
	).Scan(&res.ID, &res.Confirmed, &res.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating reservation: %w", err)
	}
	return &res, nil
}

func (r *ReservationRepository) GetByID(id int) (*db.Reservation, error) {
	var res db.Reservation
	err := r.DB.QueryRow(`
		SELECT id, provider_id, client_id, date, time_slot, confirmed, created_at
		FROM reservations WHERE id = $1`,
		id,
	).Scan(&res.ID, &res.ProviderID, &res.ClientID, &res.Date, &res.TimeSlot, &res.Confirmed, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound(fmt.Sprintf("reservation with id %d not found", id))
		}
		return nil, fmt.Errorf("error querying reservation: %w", err)
	}
	return &res, nil
}

// Confirm promotes a reservation to confirmed. Confirming an already
// confirmed reservation is a no-op success. The partial unique index on
// confirmed slots turns a concurrent confirm of a sibling hold into a
// unique violation, surfaced as a conflict.
func (r *ReservationRepository) Confirm(id int) (*db.Reservation, error) {
	var res db.Reservation
	err := r.DB.QueryRow(`
		UPDATE reservations SET confirmed = TRUE
		WHERE id = $1
		RETURNING id, provider_id, client_id, date, time_slot, confirmed, created_at`,
		id,
	).Scan(&res.ID, &res.ProviderID, &res.ClientID, &res.Date, &res.TimeSlot, &res.Confirmed, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound(fmt.Sprintf("reservation with id %d not found", id))
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, apperrors.ErrConflict("this time slot is already confirmed for another reservation")
		}
		return nil, fmt.Errorf("error confirming reservation: %w", err)
	}
	return &res, nil
}
