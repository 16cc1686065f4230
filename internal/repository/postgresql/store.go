package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/albapay/albapay-backend-go/internal/domain/store"
	"github.com/albapay/albapay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type storeRepositoryImpl struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.StoreRepository {
	return &storeRepositoryImpl{db: db}
}

// Create implements store.StoreRepository.
func (r *storeRepositoryImpl) Create(ctx context.Context, s store.Store) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stores (id, owner_id, name, address, phone, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, owner_id, name, address, phone
	`

	var result store.Store
	err := q.QueryRow(ctx, query, s.OwnerID, s.Name, s.Address, s.Phone).Scan(
		&result.ID,
		&result.OwnerID,
		&result.Name,
		&result.Address,
		&result.Phone,
	)

	if err != nil {
		return store.Store{}, fmt.Errorf("failed to create store: %w", err)
	}

	return result, nil
}

// GetByID implements store.StoreRepository.
func (r *storeRepositoryImpl) GetByID(ctx context.Context, id string, ownerID string) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, name, address, phone
		FROM stores
		WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL
	`

	var result store.Store
	err := q.QueryRow(ctx, query, id, ownerID).Scan(
		&result.ID,
		&result.OwnerID,
		&result.Name,
		&result.Address,
		&result.Phone,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Store{}, store.ErrStoreNotFound
		}
		return store.Store{}, fmt.Errorf("failed to get store: %w", err)
	}

	return result, nil
}

// GetByOwnerID implements store.StoreRepository.
func (r *storeRepositoryImpl) GetByOwnerID(ctx context.Context, ownerID string) ([]store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, name, address, phone
		FROM stores
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stores: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var s store.Store
		err := rows.Scan(
			&s.ID,
			&s.OwnerID,
			&s.Name,
			&s.Address,
			&s.Phone,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return stores, nil
}

// Update implements store.StoreRepository.
func (r *storeRepositoryImpl) Update(ctx context.Context, ownerID string, req store.UpdateStoreRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE stores SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}

	if req.Address != nil {
		query += fmt.Sprintf(", address = $%d", argIdx)
		args = append(args, *req.Address)
		argIdx++
	}

	if req.Phone != nil {
		query += fmt.Sprintf(", phone = $%d", argIdx)
		args = append(args, *req.Phone)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d AND owner_id = $%d AND deleted_at IS NULL", argIdx, argIdx+1)
	args = append(args, req.ID, ownerID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}

	return nil
}

// Delete implements store.StoreRepository.
func (r *storeRepositoryImpl) Delete(ctx context.Context, id string, ownerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE stores SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}

	return nil
}
