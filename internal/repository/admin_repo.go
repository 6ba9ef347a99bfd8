package repository

import (
	"database/sql"
	"strconv"

	"turnero/internal/entities"
)

type AdminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

// ListReservations returns reservations joined with provider and client
// identities, optionally filtered by date and provider name.
func (r *AdminRepository) ListReservations(date, providerName string) ([]entities.ReservationListItem, error) {
	query := `
	SELECT r.id, p.name, c.email, r.date, r.time_slot, r.confirmed, r.created_at
	FROM reservations r
	JOIN providers p ON p.id = r.provider_id
	JOIN clients c ON c.id = r.client_id
	WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if date != "" {
		query += " AND r.date = $" + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	if providerName != "" {
		query += " AND p.name = $" + strconv.Itoa(idx)
		args = append(args, providerName)
		idx++
	}
	query += " ORDER BY r.date DESC, r.time_slot DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []entities.ReservationListItem
	for rows.Next() {
		var item entities.ReservationListItem
		err := rows.Scan(&item.ID, &item.ProviderName, &item.ClientEmail, &item.Date, &item.TimeSlot, &item.Confirmed, &item.CreatedAt)
		if err == nil {
			reservations = append(reservations, item)
		}
	}
	return reservations, nil
}
