package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/albapay/albapay-backend-go/internal/domain/exception"
	"github.com/albapay/albapay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type exceptionRepositoryImpl struct {
	db *database.DB
}

func NewExceptionRepository(db *database.DB) exception.ExceptionRepository {
	return &exceptionRepositoryImpl{db: db}
}

// Create implements exception.ExceptionRepository.
func (r *exceptionRepositoryImpl) Create(ctx context.Context, exc exception.Exception) (exception.Exception, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedule_exceptions (id, store_id, employee_id, date, exception_type, start_time, end_time, notes, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, store_id, employee_id, to_char(date, 'YYYY-MM-DD'), exception_type, start_time, end_time, notes, created_at
	`

	var result exception.Exception
	err := q.QueryRow(ctx, query,
		exc.StoreID, exc.EmployeeID, exc.Date, string(exc.Type), exc.StartTime, exc.EndTime, exc.Notes,
	).Scan(
		&result.ID,
		&result.StoreID,
		&result.EmployeeID,
		&result.Date,
		&result.Type,
		&result.StartTime,
		&result.EndTime,
		&result.Notes,
		&result.CreatedAt,
	)

	if err != nil {
		return exception.Exception{}, fmt.Errorf("failed to create exception: %w", err)
	}

	return result, nil
}

// GetByID implements exception.ExceptionRepository.
func (r *exceptionRepositoryImpl) GetByID(ctx context.Context, id string, storeID string) (exception.Exception, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, employee_id, to_char(date, 'YYYY-MM-DD'), exception_type, start_time, end_time, notes, created_at
		FROM schedule_exceptions
		WHERE id = $1 AND store_id = $2
	`

	var result exception.Exception
	err := q.QueryRow(ctx, query, id, storeID).Scan(
		&result.ID,
		&result.StoreID,
		&result.EmployeeID,
		&result.Date,
		&result.Type,
		&result.StartTime,
		&result.EndTime,
		&result.Notes,
		&result.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return exception.Exception{}, exception.ErrExceptionNotFound
		}
		return exception.Exception{}, fmt.Errorf("failed to get exception: %w", err)
	}

	return result, nil
}

// GetByStoreAndMonth implements exception.ExceptionRepository.
// Rows come back ordered by (date, created_at) so callers can apply
// them in a deterministic last-wins order.
func (r *exceptionRepositoryImpl) GetByStoreAndMonth(ctx context.Context, storeID string, year, month int) ([]exception.Exception, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, employee_id, to_char(date, 'YYYY-MM-DD'), exception_type, start_time, end_time, notes, created_at
		FROM schedule_exceptions
		WHERE store_id = $1
		  AND date >= make_date($2, $3, 1)
		  AND date < make_date($2, $3, 1) + INTERVAL '1 month'
		ORDER BY date ASC, created_at ASC
	`

	return r.queryExceptions(ctx, q, query, storeID, year, month)
}

// GetByEmployeeAndMonth implements exception.ExceptionRepository.
func (r *exceptionRepositoryImpl) GetByEmployeeAndMonth(ctx context.Context, employeeID string, storeID string, year, month int) ([]exception.Exception, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, employee_id, to_char(date, 'YYYY-MM-DD'), exception_type, start_time, end_time, notes, created_at
		FROM schedule_exceptions
		WHERE employee_id = $1 AND store_id = $2
		  AND date >= make_date($3, $4, 1)
		  AND date < make_date($3, $4, 1) + INTERVAL '1 month'
		ORDER BY date ASC, created_at ASC
	`

	return r.queryExceptions(ctx, q, query, employeeID, storeID, year, month)
}

func (r *exceptionRepositoryImpl) queryExceptions(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]exception.Exception, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get exceptions: %w", err)
	}
	defer rows.Close()

	var exceptions []exception.Exception
	for rows.Next() {
		var exc exception.Exception
		err := rows.Scan(
			&exc.ID,
			&exc.StoreID,
			&exc.EmployeeID,
			&exc.Date,
			&exc.Type,
			&exc.StartTime,
			&exc.EndTime,
			&exc.Notes,
			&exc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exception: %w", err)
		}
		exceptions = append(exceptions, exc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return exceptions, nil
}

// Update implements exception.ExceptionRepository.
func (r *exceptionRepositoryImpl) Update(ctx context.Context, storeID string, req exception.UpdateExceptionRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE schedule_exceptions SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.StartTime != nil {
		query += fmt.Sprintf(", start_time = $%d", argIdx)
		args = append(args, *req.StartTime)
		argIdx++
	}

	if req.EndTime != nil {
		query += fmt.Sprintf(", end_time = $%d", argIdx)
		args = append(args, *req.EndTime)
		argIdx++
	}

	if req.Notes != nil {
		query += fmt.Sprintf(", notes = $%d", argIdx)
		args = append(args, *req.Notes)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d AND store_id = $%d", argIdx, argIdx+1)
	args = append(args, req.ID, storeID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update exception: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return exception.ErrExceptionNotFound
	}

	return nil
}

// Delete implements exception.ExceptionRepository.
func (r *exceptionRepositoryImpl) Delete(ctx context.Context, id string, storeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM schedule_exceptions WHERE id = $1 AND store_id = $2`

	commandTag, err := q.Exec(ctx, query, id, storeID)
	if err != nil {
		return fmt.Errorf("failed to delete exception: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return exception.ErrExceptionNotFound
	}

	return nil
}
