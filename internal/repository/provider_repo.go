package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"turnero/internal/db"
	apperrors "turnero/internal/errors"
)

type ProviderRepository struct {
	DB *sql.DB
}

func NewProviderRepository(db *sql.DB) *ProviderRepository {
	return &ProviderRepository{DB: db}
}

func (r *ProviderRepository) GetByName(name string) (*db.Provider, error) {
	var provider db.Provider
	err := r.DB.QueryRow(`SELECT id, name FROM providers WHERE name = $1`, name).
		Scan(&provider.ID, &provider.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound(fmt.Sprintf("provider with name %s not found", name))
		}
		return nil, fmt.Errorf("error querying provider: %w", err)
	}
	return &provider, nil
}

func (r *ProviderRepository) Create(name string) (*db.Provider, error) {
	provider := db.Provider{Name: name}
	err := r.DB.QueryRow(`INSERT INTO providers (name) VALUES ($1) RETURNING id`, name).
		Scan(&provider.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, apperrors.ErrConflict(fmt.Sprintf("provider with name %s already exists", name))
		}
		return nil, fmt.Errorf("error creating provider: %w", err)
	}
	return &provider, nil
}
