package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"turnero/internal/db"
	apperrors "turnero/internal/errors"
)

// uniqueViolation is the Postgres error code for unique constraint breaches.
const uniqueViolation = pq.ErrorCode("23505")

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) GetByEmail(email string) (*db.Client, error) {
	var client db.Client
	err := r.DB.QueryRow(`SELECT id, name, email FROM clients WHERE email = $1`, email).
		Scan(&client.ID, &client.Name, &client.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound(fmt.Sprintf("client with email %s not found", email))
		}
		return nil, fmt.Errorf("error querying client: %w", err)
	}
	return &client, nil
}

func (r *ClientRepository) Create(name, email string) (*db.Client, error) {
	client := db.Client{Name: name, Email: email}
	err := r.DB.QueryRow(`INSERT INTO clients (name, email) VALUES ($1, $2) RETURNING id`, name, email).
		Scan(&client.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, apperrors.ErrConflict(fmt.Sprintf("client with email %s already exists", email))
		}
		return nil, fmt.Errorf("error creating client: %w", err)
	}
	return &client, nil
}
