package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/albapay/albapay-backend-go/internal/domain/template"
	"github.com/albapay/albapay-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type templateRepositoryImpl struct {
	db *database.DB
}

func NewTemplateRepository(db *database.DB) template.TemplateRepository {
	return &templateRepositoryImpl{db: db}
}

// Create implements template.TemplateRepository.
func (r *templateRepositoryImpl) Create(ctx context.Context, t template.WeeklyTemplate) (template.WeeklyTemplate, error) {
	q := GetQuerier(ctx, r.db)

	scheduleJSON, err := json.Marshal(t.ScheduleData)
	if err != nil {
		return template.WeeklyTemplate{}, fmt.Errorf("failed to marshal schedule data: %w", err)
	}

	query := `
		INSERT INTO weekly_templates (id, store_id, name, schedule_data, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, store_id, name, schedule_data
	`

	var (
		result  template.WeeklyTemplate
		rawData []byte
	)
	err = q.QueryRow(ctx, query, t.StoreID, t.Name, scheduleJSON).Scan(
		&result.ID,
		&result.StoreID,
		&result.Name,
		&rawData,
	)

	if err != nil {
		return template.WeeklyTemplate{}, fmt.Errorf("failed to create template: %w", err)
	}

	if err := json.Unmarshal(rawData, &result.ScheduleData); err != nil {
		return template.WeeklyTemplate{}, fmt.Errorf("failed to unmarshal schedule data: %w", err)
	}

	return result, nil
}

// GetByID implements template.TemplateRepository.
func (r *templateRepositoryImpl) GetByID(ctx context.Context, id string, storeID string) (template.WeeklyTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, name, schedule_data
		FROM weekly_templates
		WHERE id = $1 AND store_id = $2 AND deleted_at IS NULL
	`

	var (
		result  template.WeeklyTemplate
		rawData []byte
	)
	err := q.QueryRow(ctx, query, id, storeID).Scan(
		&result.ID,
		&result.StoreID,
		&result.Name,
		&rawData,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return template.WeeklyTemplate{}, template.ErrTemplateNotFound
		}
		return template.WeeklyTemplate{}, fmt.Errorf("failed to get template: %w", err)
	}

	if err := json.Unmarshal(rawData, &result.ScheduleData); err != nil {
		return template.WeeklyTemplate{}, fmt.Errorf("failed to unmarshal schedule data: %w", err)
	}

	return result, nil
}

// GetByStoreID implements template.TemplateRepository.
func (r *templateRepositoryImpl) GetByStoreID(ctx context.Context, storeID string) ([]template.WeeklyTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, name, schedule_data
		FROM weekly_templates
		WHERE store_id = $1 AND deleted_at IS NULL
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}
	defer rows.Close()

	var templates []template.WeeklyTemplate
	for rows.Next() {
		var (
			t       template.WeeklyTemplate
			rawData []byte
		)
		err := rows.Scan(
			&t.ID,
			&t.StoreID,
			&t.Name,
			&rawData,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan template: %w", err)
		}
		if err := json.Unmarshal(rawData, &t.ScheduleData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal schedule data: %w", err)
		}
		templates = append(templates, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return templates, nil
}

// Update implements template.TemplateRepository.
func (r *templateRepositoryImpl) Update(ctx context.Context, storeID string, req template.UpdateTemplateRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE weekly_templates SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}

	if req.ScheduleData != nil {
		scheduleJSON, err := json.Marshal(*req.ScheduleData)
		if err != nil {
			return fmt.Errorf("failed to marshal schedule data: %w", err)
		}
		query += fmt.Sprintf(", schedule_data = $%d", argIdx)
		args = append(args, scheduleJSON)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d AND store_id = $%d AND deleted_at IS NULL", argIdx, argIdx+1)
	args = append(args, req.ID, storeID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update template: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return template.ErrTemplateNotFound
	}

	return nil
}

// Delete implements template.TemplateRepository.
func (r *templateRepositoryImpl) Delete(ctx context.Context, id string, storeID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE weekly_templates SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND store_id = $2 AND deleted_at IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id, storeID)
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return template.ErrTemplateNotFound
	}

	return nil
}
