package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/albapay/albapay-backend-go/internal/domain/employee"
	"github.com/albapay/albapay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, store_id, name, hourly_wage, position, phone, dependents, is_active, hired_at, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, store_id, name, hourly_wage, position, phone, dependents, is_active, hired_at
	`

	var result employee.Employee
	err := q.QueryRow(ctx, query,
		e.StoreID, e.Name, e.HourlyWage, e.Position, e.Phone, e.Dependents, e.IsActive, e.HiredAt,
	).Scan(
		&result.ID,
		&result.StoreID,
		&result.Name,
		&result.HourlyWage,
		&result.Position,
		&result.Phone,
		&result.Dependents,
		&result.IsActive,
		&result.HiredAt,
	)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return result, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, storeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, name, hourly_wage, position, phone, dependents, is_active, hired_at
		FROM employees
		WHERE id = $1 AND store_id = $2 AND deleted_at IS NULL
	`

	var result employee.Employee
	err := q.QueryRow(ctx, query, id, storeID).Scan(
		&result.ID,
		&result.StoreID,
		&result.Name,
		&result.HourlyWage,
		&result.Position,
		&result.Phone,
		&result.Dependents,
		&result.IsActive,
		&result.HiredAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return result, nil
}

// GetByStoreID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByStoreID(ctx context.Context, storeID string) ([]employee.Employee, error) {
	return r.listByStore(ctx, storeID, false)
}

// GetActiveByStoreID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetActiveByStoreID(ctx context.Context, storeID string) ([]employee.Employee, error) {
	return r.listByStore(ctx, storeID, true)
}

func (r *employeeRepositoryImpl) listByStore(ctx context.Context, storeID string, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, name, hourly_wage, position, phone, dependents, is_active, hired_at
		FROM employees
		WHERE store_id = $1 AND deleted_at IS NULL
	`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name ASC, id ASC`

	rows, err := q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID,
			&e.StoreID,
			&e.Name,
			&e.HourlyWage,
			&e.Position,
			&e.Phone,
			&e.Dependents,
			&e.IsActive,
			&e.HiredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, storeID string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE employees SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}

	if req.HourlyWage != nil {
		query += fmt.Sprintf(", hourly_wage = $%d", argIdx)
		args = append(args, *req.HourlyWage)
		argIdx++
	}

	if req.Position != nil {
		query += fmt.Sprintf(", position = $%d", argIdx)
		args = append(args, *req.Position)
		argIdx++
	}

	if req.Phone != nil {
		query += fmt.Sprintf(", phone = $%d", argIdx)
		args = append(args, *req.Phone)
		argIdx++
	}

	if req.Dependents != nil {
		query += fmt.Sprintf(", dependents = $%d", argIdx)
		args = append(args, *req.Dependents)
		argIdx++
	}

	if req.IsActive != nil {
		query += fmt.Sprintf(", is_active = $%d", argIdx)
		args = append(args, *req.IsActive)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d AND store_id = $%d AND deleted_at IS NULL", argIdx, argIdx+1)
	args = append(args, req.ID, storeID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string, storeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND store_id = $2 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id, storeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
