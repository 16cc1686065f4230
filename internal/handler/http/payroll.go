package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/albapay/albapay-backend-go/internal/domain/payroll"
	"github.com/albapay/albapay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	CalculateMonthly(w http.ResponseWriter, r *http.Request)
	CalculateEmployee(w http.ResponseWriter, r *http.Request)
	EstimateSalary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// CalculateMonthly implements PayrollHandler.
func (h *PayrollHandlerImpl) CalculateMonthly(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateMonthlyPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Calculate monthly payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreID = chi.URLParam(r, "storeID")

	summary, err := h.payrollService.CalculateMonthlyPayroll(r.Context(), req)
	if err != nil {
		slog.Error("Failed to calculate monthly payroll", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// CalculateEmployee implements PayrollHandler.
func (h *PayrollHandlerImpl) CalculateEmployee(w http.ResponseWriter, r *http.Request) {
	var req payroll.CalculateEmployeePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Calculate employee payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreID = chi.URLParam(r, "storeID")
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.payrollService.CalculateEmployeePayroll(r.Context(), req)
	if err != nil {
		slog.Error("Failed to calculate employee payroll", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EstimateSalary implements PayrollHandler.
func (h *PayrollHandlerImpl) EstimateSalary(w http.ResponseWriter, r *http.Request) {
	var req payroll.EstimateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Estimate salary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	estimate, err := h.payrollService.EstimateSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, estimate)
}
