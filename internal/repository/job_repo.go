package repository

import (
	"database/sql"
	"fmt"
	"time"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// GetUnconfirmedReservationIDsOlderThan returns the ids of unconfirmed
// reservations created before the cutoff.
func (r *JobRepository) GetUnconfirmedReservationIDsOlderThan(cutoff time.Time) ([]int, error) {
	rows, err := r.DB.Query(
		`SELECT id FROM reservations WHERE NOT confirmed AND created_at < $1`,
		cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying expired reservations: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning reservation ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// DeleteReservation removes a single reservation, re-checking that it is
// still unconfirmed so a confirm landing between the sweep query and the
// delete keeps the row.
func (r *JobRepository) DeleteReservation(id int) error {
	_, err := r.DB.Exec(`DELETE FROM reservations WHERE id = $1 AND NOT confirmed`, id)
	if err != nil {
		return fmt.Errorf("error deleting reservation %d: %w", id, err)
	}
	return nil
}
