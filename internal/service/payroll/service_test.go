package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/albapay/albapay-backend-go/internal/domain/employee"
	"github.com/albapay/albapay-backend-go/internal/domain/exception"
	"github.com/albapay/albapay-backend-go/internal/domain/payroll"
	"github.com/albapay/albapay-backend-go/internal/domain/store"
	"github.com/albapay/albapay-backend-go/internal/domain/template"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory repositories: the aggregator only reads, so maps suffice.

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

type fakeTemplateRepo struct{ templates map[string]template.WeeklyTemplate }

func (f *fakeTemplateRepo) Create(_ context.Context, t template.WeeklyTemplate) (template.WeeklyTemplate, error) {
	return t, nil
}
func (f *fakeTemplateRepo) GetByID(_ context.Context, id, storeID string) (template.WeeklyTemplate, error) {
	t, ok := f.templates[id]
	if !ok || t.StoreID != storeID {
		return template.WeeklyTemplate{}, template.ErrTemplateNotFound
	}
	return t, nil
}
func (f *fakeTemplateRepo) GetByStoreID(_ context.Context, _ string) ([]template.WeeklyTemplate, error) {
	return nil, nil
}
func (f *fakeTemplateRepo) Update(_ context.Context, _ string, _ template.UpdateTemplateRequest) error {
	return nil
}
func (f *fakeTemplateRepo) Delete(_ context.Context, _, _ string) error { return nil }

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
func (f *fakeEmployeeRepo) GetByStoreID(_ context.Context, storeID string) ([]employee.Employee, error) {
	return f.GetActiveByStoreID(context.Background(), storeID)
}
func (f *fakeEmployeeRepo) GetActiveByStoreID(_ context.Context, storeID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.StoreID == storeID && e.IsActive {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeEmployeeRepo) Update(_ context.Context, _ string, _ employee.UpdateEmployeeRequest) error {
	return nil
}
func (f *fakeEmployeeRepo) Delete(_ context.Context, _, _ string) error { return nil }

type fakeExceptionRepo struct{ exceptions []exception.Exception }

func (f *fakeExceptionRepo) Create(_ context.Context, e exception.Exception) (exception.Exception, error) {
	return e, nil
}
func (f *fakeExceptionRepo) GetByID(_ context.Context, _, _ string) (exception.Exception, error) {
	return exception.Exception{}, exception.ErrExceptionNotFound
}
func (f *fakeExceptionRepo) GetByStoreAndMonth(_ context.Context, storeID string, year, month int) ([]exception.Exception, error) {
	var out []exception.Exception
	prefix := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	for _, e := range f.exceptions {
		if e.StoreID == storeID && len(e.Date) >= 7 && e.Date[:7] == prefix {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeExceptionRepo) GetByEmployeeAndMonth(ctx context.Context, employeeID, storeID string, year, month int) ([]exception.Exception, error) {
	all, _ := f.GetByStoreAndMonth(ctx, storeID, year, month)
	var out []exception.Exception
	for _, e := range all {
		if e.EmployeeID == employeeID {
			out = append(out, e)
		}
	}
	return out, nil
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

func newTestService(excs []exception.Exception) payroll.PayrollService {
	sched := weekdayTemplate("emp-1")
	sched.ScheduleData["monday"].Employees["emp-2"] = template.EmployeeShift{
		StartTime: "18:00",
		EndTime:   "23:00",
	}

	return NewPayrollService(
		&fakeStoreRepo{stores: map[string]store.Store{
			"store-1": {ID: "store-1", OwnerID: "owner-1", Name: "Mapo Branch"},
		}},
		&fakeTemplateRepo{templates: map[string]template.WeeklyTemplate{"tpl-1": sched}},
		&fakeEmployeeRepo{employees: []employee.Employee{
			{ID: "emp-1", StoreID: "store-1", Name: "Kim", HourlyWage: 10030, IsActive: true},
			{ID: "emp-2", StoreID: "store-1", Name: "Lee", HourlyWage: 11000, IsActive: true},
			{ID: "emp-3", StoreID: "store-1", Name: "Park", HourlyWage: 12000, IsActive: false},
		}},
		&fakeExceptionRepo{exceptions: excs},
	)
}

func TestCalculateMonthlyPayrollAggregation(t *testing.T) {
	svc := newTestService([]exception.Exception{
		{StoreID: "store-1", EmployeeID: "emp-1", Date: "2025-07-01", Type: exception.TypeCancel},
		{StoreID: "store-1", EmployeeID: "emp-2", Date: "2025-07-07", Type: exception.TypeExtra, StartTime: strPtr("23:00"), EndTime: strPtr("01:00")},
	})
	ctx := authedContext(t, "owner-1")

	summary, err := svc.CalculateMonthlyPayroll(ctx, payroll.CalculateMonthlyPayrollRequest{
		StoreID: "store-1", TemplateID: "tpl-1", Year: 2025, Month: 7,
	})
	require.NoError(t, err)

	// Inactive employees are excluded; order follows the roster.
	require.Len(t, summary.Results, 2)
	assert.Equal(t, 2, summary.EmployeeCount)
	assert.Equal(t, "emp-1", summary.Results[0].EmployeeID)
	assert.Equal(t, "emp-2", summary.Results[1].EmployeeID)

	var wantBase, wantAdj, wantFinal int64
	for _, r := range summary.Results {
		wantBase += r.MonthlySalary.GrossSalary
		for _, adj := range r.Adjustments {
			wantAdj += adj.PayDifference
		}
		wantFinal += r.TotalPay
	}
	assert.Equal(t, wantBase, summary.TotalBasePay)
	assert.Equal(t, wantAdj, summary.TotalExceptionAdjustments)
	assert.Equal(t, wantFinal, summary.TotalFinalPay)
	assert.Equal(t, summary.TotalBasePay+summary.TotalExceptionAdjustments, summary.TotalFinalPay)
	assert.Equal(t, payroll.TaxDisclaimer, summary.Disclaimer)

	// The cancelled day shows up as a negative delta for emp-1.
	require.Len(t, summary.Results[0].Adjustments, 1)
	assert.Equal(t, int64(-80_240), summary.Results[0].Adjustments[0].PayDifference)
	assert.Equal(t, summary.Results[0].MonthlySalary.GrossSalary-80_240, summary.Results[0].TotalPay)
}

func TestCalculateMonthlyPayrollFailsFast(t *testing.T) {
	svc := newTestService(nil)
	ctx := authedContext(t, "owner-1")

	_, err := svc.CalculateMonthlyPayroll(ctx, payroll.CalculateMonthlyPayrollRequest{
		StoreID: "missing", TemplateID: "tpl-1", Year: 2025, Month: 7,
	})
	assert.ErrorIs(t, err, store.ErrStoreNotFound)

	_, err = svc.CalculateMonthlyPayroll(ctx, payroll.CalculateMonthlyPayrollRequest{
		StoreID: "store-1", TemplateID: "missing", Year: 2025, Month: 7,
	})
	assert.ErrorIs(t, err, template.ErrTemplateNotFound)

	// A store owned by someone else is indistinguishable from a missing one.
	_, err = svc.CalculateMonthlyPayroll(authedContext(t, "owner-2"), payroll.CalculateMonthlyPayrollRequest{
		StoreID: "store-1", TemplateID: "tpl-1", Year: 2025, Month: 7,
	})
	assert.ErrorIs(t, err, store.ErrStoreNotFound)
}

func TestCalculateMonthlyPayrollValidation(t *testing.T) {
	svc := newTestService(nil)
	ctx := authedContext(t, "owner-1")

	_, err := svc.CalculateMonthlyPayroll(ctx, payroll.CalculateMonthlyPayrollRequest{
		StoreID: "store-1", TemplateID: "tpl-1", Year: 2025, Month: 13,
	})
	assert.Error(t, err)
}

func TestCalculateEmployeePayroll(t *testing.T) {
	svc := newTestService([]exception.Exception{
		{StoreID: "store-1", EmployeeID: "emp-2", Date: "2025-07-07", Type: exception.TypeOverride, StartTime: strPtr("18:00"), EndTime: strPtr("22:00")},
	})
	ctx := authedContext(t, "owner-1")

	result, err := svc.CalculateEmployeePayroll(ctx, payroll.CalculateEmployeePayrollRequest{
		StoreID: "store-1", EmployeeID: "emp-2", TemplateID: "tpl-1", Year: 2025, Month: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, "Lee", result.EmployeeName)
	require.Len(t, result.Adjustments, 1)
	assert.Equal(t, exception.TypeOverride, result.Adjustments[0].Type)
	// Mondays only: 5h base, overridden to 4h on the 7th.
	assert.Equal(t, -1.0, result.Adjustments[0].HoursDifference)
	assert.Equal(t, int64(-11_000), result.Adjustments[0].PayDifference)
}

func TestEstimateSalary(t *testing.T) {
	svc := newTestService(nil)

	got, err := svc.EstimateSalary(context.Background(), payroll.EstimateSalaryRequest{
		WeeklyHours: 40, HourlyWage: 10030,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2_092_258), got.MonthlySalary.GrossSalary)
	assert.True(t, got.HolidayPay)
	assert.Equal(t, got.MonthlySalary.GrossSalary-got.NetSalary.TotalDeductions, got.NetSalary.NetSalary)
	assert.Equal(t, payroll.TaxDisclaimer, got.Disclaimer)

	_, err = svc.EstimateSalary(context.Background(), payroll.EstimateSalaryRequest{WeeklyHours: -1, HourlyWage: 10030})
	assert.Error(t, err)
}
