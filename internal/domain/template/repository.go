package template

import "context"

type TemplateRepository interface {
	Create(ctx context.Context, t WeeklyTemplate) (WeeklyTemplate, error)
	GetByID(ctx context.Context, id string, storeID string) (WeeklyTemplate, error)
	GetByStoreID(ctx context.Context, storeID string) ([]WeeklyTemplate, error)
	Update(ctx context.Context, storeID string, req UpdateTemplateRequest) error
	Delete(ctx context.Context, id string, storeID string) error
}
