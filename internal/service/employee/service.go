package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/albapay/albapay-backend-go/internal/domain/employee"
	"github.com/albapay/albapay-backend-go/internal/domain/payroll"
	"github.com/albapay/albapay-backend-go/internal/domain/store"
	"github.com/albapay/albapay-backend-go/internal/pkg/database"
	"github.com/albapay/albapay-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	storeRepo    store.StoreRepository
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(
	db *database.DB,
	storeRepo store.StoreRepository,
	employeeRepo employee.EmployeeRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		storeRepo:    storeRepo,
		employeeRepo: employeeRepo,
	}
}

func getClaimsFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// requireStore confirms the store belongs to the authenticated owner
// before any employee row is touched.
func (s *EmployeeServiceImpl) requireStore(ctx context.Context, storeID string) error {
	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	_, err = s.storeRepo.GetByID(ctx, storeID, userID)
	return err
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := s.requireStore(ctx, req.StoreID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	rates := payroll.RatesForYear(time.Now().Year())
	if req.HourlyWage < rates.MinimumHourlyWage {
		return employee.EmployeeResponse{}, employee.ErrWageBelowMinimum
	}

	var hiredAt *time.Time
	if req.HiredAt != nil {
		t, err := time.Parse("2006-01-02", *req.HiredAt)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse hired_at: %w", err)
		}
		hiredAt = &t
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		StoreID:    req.StoreID,
		Name:       req.Name,
		HourlyWage: req.HourlyWage,
		Position:   req.Position,
		Phone:      req.Phone,
		Dependents: req.Dependents,
		IsActive:   true,
		HiredAt:    hiredAt,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, storeID, id string) (employee.EmployeeResponse, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	found, err := s.employeeRepo.GetByID(ctx, id, storeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(found), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, storeID string, activeOnly bool) ([]employee.EmployeeResponse, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	var (
		employees []employee.Employee
		err       error
	)
	if activeOnly {
		employees, err = s.employeeRepo.GetActiveByStoreID(ctx, storeID)
	} else {
		employees, err = s.employeeRepo.GetByStoreID(ctx, storeID)
	}
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToResponse(emp))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, storeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.HourlyWage != nil {
		rates := payroll.RatesForYear(time.Now().Year())
		if *req.HourlyWage < rates.MinimumHourlyWage {
			return employee.EmployeeResponse{}, employee.ErrWageBelowMinimum
		}
	}
	if req.Dependents != nil && *req.Dependents < 0 {
		return employee.EmployeeResponse{}, fmt.Errorf("dependents must be non-negative")
	}

	var found employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.employeeRepo.Update(txCtx, storeID, req); err != nil {
			return err
		}

		var err error
		found, err = s.employeeRepo.GetByID(txCtx, req.ID, storeID)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapToResponse(found), nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, storeID, id string) error {
	if err := s.requireStore(ctx, storeID); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id, storeID)
}

func mapToResponse(e employee.Employee) employee.EmployeeResponse {
	dependents := 1
	if e.Dependents != nil && *e.Dependents >= 1 {
		dependents = *e.Dependents
	}
	return employee.EmployeeResponse{
		ID:         e.ID,
		StoreID:    e.StoreID,
		Name:       e.Name,
		HourlyWage: e.HourlyWage,
		Position:   e.Position,
		Phone:      e.Phone,
		Dependents: dependents,
		IsActive:   e.IsActive,
	}
}
