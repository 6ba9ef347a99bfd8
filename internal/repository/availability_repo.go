package repository

import (
	"database/sql"
	"fmt"

	"turnero/internal/db"
)

type AvailabilityRepository struct {
	DB *sql.DB
}

func NewAvailabilityRepository(db *sql.DB) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

func (r *AvailabilityRepository) Create(providerID int, date, startTime, endTime string) (*db.Availability, error) {
	availability := db.Availability{
		ProviderID: providerID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
	}
	err := r.DB.QueryRow(`
		INSERT INTO availabilities (provider_id, date, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		providerID, date, startTime, endTime,
	).Scan(&availability.ID)
	if err != nil {
		return nil, fmt.Errorf("error creating availability: %w", err)
	}
	return &availability, nil
}

// ListForProviderAndDate returns the provider's windows for a date in
// creation order. Overlapping windows are returned as-is, never merged.
func (r *AvailabilityRepository) ListForProviderAndDate(providerID int, date string) ([]db.Availability, error) {
	rows, err := r.DB.Query(`
		SELECT id, provider_id, date, start_time, end_time
		FROM availabilities
		WHERE provider_id = $1 AND date = $2
		ORDER BY id`,
		providerID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying availabilities: %w", err)
	}
	defer rows.Close()

	var availabilities []db.Availability
	for rows.Next() {
		var a db.Availability
		if err := rows.Scan(&a.ID, &a.ProviderID, &a.Date, &a.StartTime, &a.EndTime); err != nil {
			return nil, fmt.Errorf("error scanning availability: %w", err)
		}
		availabilities = append(availabilities, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating availability rows: %w", err)
	}
	return availabilities, nil
}
