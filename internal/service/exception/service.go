package exception

import (
	"context"
	"fmt"

	"github.com/albapay/albapay-backend-go/internal/domain/employee"
	"github.com/albapay/albapay-backend-go/internal/domain/exception"
	"github.com/albapay/albapay-backend-go/internal/domain/store"
	"github.com/go-chi/jwtauth/v5"
)

type ExceptionServiceImpl struct {
	storeRepo     store.StoreRepository
	employeeRepo  employee.EmployeeRepository
	exceptionRepo exception.ExceptionRepository
}

func NewExceptionService(
	storeRepo store.StoreRepository,
	employeeRepo employee.EmployeeRepository,
	exceptionRepo exception.ExceptionRepository,
) exception.ExceptionService {
	return &ExceptionServiceImpl{
		storeRepo:     storeRepo,
		employeeRepo:  employeeRepo,
		exceptionRepo: exceptionRepo,
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

func (s *ExceptionServiceImpl) requireStore(ctx context.Context, storeID string) error {
	userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}
	_, err = s.storeRepo.GetByID(ctx, storeID, userID)
	return err
}

func (s *ExceptionServiceImpl) Create(ctx context.Context, storeID string, req exception.CreateExceptionRequest) (exception.ExceptionResponse, error) {
	if err := req.Validate(); err != nil {
		return exception.ExceptionResponse{}, err
	}
	if err := s.requireStore(ctx, storeID); err != nil {
		return exception.ExceptionResponse{}, err
	}

	// The exception must point at a worker of this store, not just any
	// employee ID the caller happens to know.
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, storeID); err != nil {
		return exception.ExceptionResponse{}, exception.ErrEmployeeNotInStore
	}

	created, err := s.exceptionRepo.Create(ctx, exception.Exception{
		StoreID:    storeID,
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Type:       exception.Type(req.Type),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Notes:      req.Notes,
	})
	if err != nil {
		return exception.ExceptionResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *ExceptionServiceImpl) Get(ctx context.Context, storeID, id string) (exception.ExceptionResponse, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return exception.ExceptionResponse{}, err
	}

	found, err := s.exceptionRepo.GetByID(ctx, id, storeID)
	if err != nil {
		return exception.ExceptionResponse{}, err
	}

	return mapToResponse(found), nil
}

func (s *ExceptionServiceImpl) ListByMonth(ctx context.Context, storeID string, year, month int) ([]exception.ExceptionResponse, error) {
	if month < 1 || month > 12 {
		return nil, exception.ErrInvalidDate
	}
	if err := s.requireStore(ctx, storeID); err != nil {
		return nil, err
	}

	exceptions, err := s.exceptionRepo.GetByStoreAndMonth(ctx, storeID, year, month)
	if err != nil {
		return nil, err
	}

	result := make([]exception.ExceptionResponse, 0, len(exceptions))
	for _, exc := range exceptions {
		result = append(result, mapToResponse(exc))
	}
	return result, nil
}

func (s *ExceptionServiceImpl) Update(ctx context.Context, storeID string, req exception.UpdateExceptionRequest) (exception.ExceptionResponse, error) {
	if err := s.requireStore(ctx, storeID); err != nil {
		return exception.ExceptionResponse{}, err
	}

	existing, err := s.exceptionRepo.GetByID(ctx, req.ID, storeID)
	if err != nil {
		return exception.ExceptionResponse{}, err
	}

	// CANCEL stays timeless; patching times onto one makes no sense.
	if existing.Type == exception.TypeCancel && (req.StartTime != nil || req.EndTime != nil) {
		return exception.ExceptionResponse{}, exception.ErrMissingTimes
	}

	if err := s.exceptionRepo.Update(ctx, storeID, req); err != nil {
		return exception.ExceptionResponse{}, err
	}

	updated, err := s.exceptionRepo.GetByID(ctx, req.ID, storeID)
	if err != nil {
		return exception.ExceptionResponse{}, err
	}
	return mapToResponse(updated), nil
}

func (s *ExceptionServiceImpl) Delete(ctx context.Context, storeID, id string) error {
	if err := s.requireStore(ctx, storeID); err != nil {
		return err
	}
	return s.exceptionRepo.Delete(ctx, id, storeID)
}

func mapToResponse(exc exception.Exception) exception.ExceptionResponse {
	return exception.ExceptionResponse{
		ID:         exc.ID,
		StoreID:    exc.StoreID,
		EmployeeID: exc.EmployeeID,
		Date:       exc.Date,
		Type:       string(exc.Type),
		StartTime:  exc.StartTime,
		EndTime:    exc.EndTime,
		Notes:      exc.Notes,
	}
}
