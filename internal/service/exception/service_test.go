package exception

import (
	"context"
	"testing"

	"github.com/albapay/albapay-backend-go/internal/domain/employee"
	"github.com/albapay/albapay-backend-go/internal/domain/exception"
	"github.com/albapay/albapay-backend-go/internal/domain/store"
	"github.com/albapay/albapay-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStoreRepo struct{ stores map[string]store.Store }

func (f *fakeStoreRepo) Create(_ context.Context, s store.Store) (store.Store, error) { return s, nil }
func (f *fakeStoreRepo) GetByID(_ context.Context, id, ownerID string) (store.Store, error) {
	s, ok := f.stores[id]
	if !ok || s.OwnerID != ownerID {
		return store.Store{}, store.ErrStoreNotFound
	}
	return s, nil
}
func (f *fakeStoreRepo) GetByOwnerID(_ context.Context, _ string) ([]store.Store, error) {
	return nil, nil
}
func (f *fakeStoreRepo) Update(_ context.Context, _ string, _ store.UpdateStoreRequest) error {
	return nil
}
func (f *fakeStoreRepo) Delete(_ context.Context, _, _ string) error { return nil }

type fakeEmployeeRepo struct{ employees []employee.Employee }

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}
func (f *fakeEmployeeRepo) GetByID(_ context.Context, id, storeID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.StoreID == storeID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) GetByStoreID(_ context.Context, _ string) ([]employee.Employee, error) {
	return f.employees, nil
}
func (f *fakeEmployeeRepo) GetActiveByStoreID(_ context.Context, _ string) ([]employee.Employee, error) {
	return f.employees, nil
}
func (f *fakeEmployeeRepo) Update(_ context.Context, _ string, _ employee.UpdateEmployeeRequest) error {
	return nil
}
func (f *fakeEmployeeRepo) Delete(_ context.Context, _, _ string) error { return nil }

type fakeExceptionRepo struct {
	byID    map[string]exception.Exception
	created []exception.Exception
}

func (f *fakeExceptionRepo) Create(_ context.Context, e exception.Exception) (exception.Exception, error) {
	e.ID = "exc-created"
	f.created = append(f.created, e)
	return e, nil
}
func (f *fakeExceptionRepo) GetByID(_ context.Context, id, storeID string) (exception.Exception, error) {
	e, ok := f.byID[id]
	if !ok || e.StoreID != storeID {
		return exception.Exception{}, exception.ErrExceptionNotFound
	}
	return e, nil
}
func (f *fakeExceptionRepo) GetByStoreAndMonth(_ context.Context, _ string, _, _ int) ([]exception.Exception, error) {
	return nil, nil
}
func (f *fakeExceptionRepo) GetByEmployeeAndMonth(_ context.Context, _, _ string, _, _ int) ([]exception.Exception, error) {
	return nil, nil
}
func (f *fakeExceptionRepo) Update(_ context.Context, _ string, _ exception.UpdateExceptionRequest) error {
	return nil
}
func (f *fakeExceptionRepo) Delete(_ context.Context, _, _ string) error { return nil }

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"user_id": userID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func strPtr(s string) *string { return &s }

func newTestService(excRepo *fakeExceptionRepo) exception.ExceptionService {
	return NewExceptionService(
		&fakeStoreRepo{stores: map[string]store.Store{
			"store-1": {ID: "store-1", OwnerID: "owner-1", Name: "Mapo Branch"},
		}},
		&fakeEmployeeRepo{employees: []employee.Employee{
			{ID: "emp-1", StoreID: "store-1", Name: "Kim", HourlyWage: 10030, IsActive: true},
		}},
		excRepo,
	)
}

func TestCreateException(t *testing.T) {
	repo := &fakeExceptionRepo{}
	svc := newTestService(repo)
	ctx := authedContext(t, "owner-1")

	resp, err := svc.Create(ctx, "store-1", exception.CreateExceptionRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-14",
		Type:       string(exception.TypeOverride),
		StartTime:  strPtr("10:00"),
		EndTime:    strPtr("16:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "exc-created", resp.ID)
	assert.Equal(t, "store-1", resp.StoreID)
	require.Len(t, repo.created, 1)
	assert.Equal(t, exception.TypeOverride, repo.created[0].Type)
}

func TestCreateExceptionCancelNeedsNoTimes(t *testing.T) {
	repo := &fakeExceptionRepo{}
	svc := newTestService(repo)
	ctx := authedContext(t, "owner-1")

	resp, err := svc.Create(ctx, "store-1", exception.CreateExceptionRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-14",
		Type:       string(exception.TypeCancel),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.StartTime)
	assert.Nil(t, resp.EndTime)
}

func TestCreateExceptionValidation(t *testing.T) {
	svc := newTestService(&fakeExceptionRepo{})
	ctx := authedContext(t, "owner-1")

	tests := []struct {
		name string
		req  exception.CreateExceptionRequest
	}{
		{"override without times", exception.CreateExceptionRequest{
			EmployeeID: "emp-1", Date: "2025-07-14", Type: string(exception.TypeOverride),
		}},
		{"extra with malformed time", exception.CreateExceptionRequest{
			EmployeeID: "emp-1", Date: "2025-07-14", Type: string(exception.TypeExtra),
			StartTime: strPtr("25:00"), EndTime: strPtr("23:00"),
		}},
		{"unknown type", exception.CreateExceptionRequest{
			EmployeeID: "emp-1", Date: "2025-07-14", Type: "SWAP",
		}},
		{"bad date", exception.CreateExceptionRequest{
			EmployeeID: "emp-1", Date: "14-07-2025", Type: string(exception.TypeCancel),
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "store-1", tc.req)
			var vErrs validator.ValidationErrors
			require.ErrorAs(t, err, &vErrs)
		})
	}
}

func TestCreateExceptionRejectsForeignEmployee(t *testing.T) {
	svc := newTestService(&fakeExceptionRepo{})
	ctx := authedContext(t, "owner-1")

	_, err := svc.Create(ctx, "store-1", exception.CreateExceptionRequest{
		EmployeeID: "emp-other",
		Date:       "2025-07-14",
		Type:       string(exception.TypeCancel),
	})
	assert.ErrorIs(t, err, exception.ErrEmployeeNotInStore)
}

func TestCreateExceptionRejectsForeignStore(t *testing.T) {
	svc := newTestService(&fakeExceptionRepo{})
	ctx := authedContext(t, "intruder")

	_, err := svc.Create(ctx, "store-1", exception.CreateExceptionRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-14",
		Type:       string(exception.TypeCancel),
	})
	assert.ErrorIs(t, err, store.ErrStoreNotFound)
}

func TestUpdateExceptionCancelStaysTimeless(t *testing.T) {
	repo := &fakeExceptionRepo{byID: map[string]exception.Exception{
		"exc-1": {ID: "exc-1", StoreID: "store-1", EmployeeID: "emp-1", Date: "2025-07-14", Type: exception.TypeCancel},
	}}
	svc := newTestService(repo)
	ctx := authedContext(t, "owner-1")

	_, err := svc.Update(ctx, "store-1", exception.UpdateExceptionRequest{
		ID:        "exc-1",
		StartTime: strPtr("10:00"),
	})
	assert.ErrorIs(t, err, exception.ErrMissingTimes)
}

func TestListByMonthRejectsBadMonth(t *testing.T) {
	svc := newTestService(&fakeExceptionRepo{})
	ctx := authedContext(t, "owner-1")

	_, err := svc.ListByMonth(ctx, "store-1", 2025, 13)
	assert.ErrorIs(t, err, exception.ErrInvalidDate)
}
