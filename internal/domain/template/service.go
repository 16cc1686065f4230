package template

import "context"

type TemplateService interface {
	Create(ctx context.Context, req CreateTemplateRequest) (TemplateResponse, error)
	Get(ctx context.Context, storeID, id string) (TemplateResponse, error)
	List(ctx context.Context, storeID string) ([]TemplateResponse, error)
	Update(ctx context.Context, storeID string, req UpdateTemplateRequest) (TemplateResponse, error)
	Delete(ctx context.Context, storeID, id string) error
}
