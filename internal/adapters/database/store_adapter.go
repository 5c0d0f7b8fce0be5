package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/amacity/storefront/internal/domain/entities"
	"github.com/amacity/storefront/internal/domain/repositories"
	"github.com/amacity/storefront/internal/infrastructure/clients/postgres"
	apperrors "github.com/amacity/storefront/pkg/errors"
)

// StoreAdapter implements the StoreRepository interface
type StoreAdapter struct {
	client *postgres.Client
}

// NewStoreAdapter creates a new store adapter
func NewStoreAdapter(client *postgres.Client) repositories.StoreRepository {
	return &StoreAdapter{
		client: client,
	}
}

const storeColumns = `
	id, name, email, description, address, phone, category,
	rating, is_open, delivery_time, latitude, longitude,
	created_at, updated_at
`

// List retrieves all stores ordered by name
func (a *StoreAdapter) List(ctx context.Context) ([]*entities.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores ORDER BY name ASC`

	rows, err := a.client.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list stores", err)
	}
	defer rows.Close()

	stores := []*entities.Store{}
	for rows.Next() {
		store, err := scanStore(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan store", err)
		}
		stores = append(stores, store)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("error iterating stores", err)
	}

	return stores, nil
}

// GetByID retrieves a store by ID
func (a *StoreAdapter) GetByID(ctx context.Context, id int64) (*entities.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`

	row := a.client.DB().QueryRowContext(ctx, query, id)
	store, err := scanStore(row)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("store with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get store", err)
	}

	return store, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStore(row rowScanner) (*entities.Store, error) {
	store := &entities.Store{}
	var phone sql.NullString
	var latitude, longitude sql.NullFloat64

	err := row.Scan(
		&store.ID,
		&store.Name,
		&store.Email,
		&store.Description,
		&store.Address,
		&phone,
		&store.Category,
		&store.Rating,
		&store.IsOpen,
		&store.DeliveryTime,
		&latitude,
		&longitude,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	store.Phone = phone.String
	if latitude.Valid {
		store.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		store.Longitude = &longitude.Float64
	}

	return store, nil
}
