package exception

import "context"

// ExceptionRepository persists day-level schedule exceptions. Month
// listings are returned ordered by (date, created_at) so the resolver's
// apply order is deterministic.
type ExceptionRepository interface {
	Create(ctx context.Context, exc Exception) (Exception, error)
	GetByID(ctx context.Context, id string, storeID string) (Exception, error)
	GetByStoreAndMonth(ctx context.Context, storeID string, year, month int) ([]Exception, error)
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, storeID string, year, month int) ([]Exception, error)
	Update(ctx context.Context, storeID string, req UpdateExceptionRequest) error
	Delete(ctx context.Context, id string, storeID string) error
}
