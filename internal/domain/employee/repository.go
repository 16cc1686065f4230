package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, storeID string) (Employee, error)
	GetByStoreID(ctx context.Context, storeID string) ([]Employee, error)
	GetActiveByStoreID(ctx context.Context, storeID string) ([]Employee, error)
	Update(ctx context.Context, storeID string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string, storeID string) error
}
