package exception

import "context"

type ExceptionService interface {
	Create(ctx context.Context, storeID string, req CreateExceptionRequest) (ExceptionResponse, error)
	Get(ctx context.Context, storeID, id string) (ExceptionResponse, error)
	ListByMonth(ctx context.Context, storeID string, year, month int) ([]ExceptionResponse, error)
	Update(ctx context.Context, storeID string, req UpdateExceptionRequest) (ExceptionResponse, error)
	Delete(ctx context.Context, storeID, id string) error
}
