package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, storeID, id string) (EmployeeResponse, error)
	List(ctx context.Context, storeID string, activeOnly bool) ([]EmployeeResponse, error)
	Update(ctx context.Context, storeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, storeID, id string) error
}
