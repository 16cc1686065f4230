package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/albapay/albapay-backend-go/internal/domain/exception"
	"github.com/albapay/albapay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExceptionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListByMonth(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ExceptionHandlerImpl struct {
	exceptionService exception.ExceptionService
}

func NewExceptionHandler(exceptionService exception.ExceptionService) ExceptionHandler {
	return &ExceptionHandlerImpl{exceptionService: exceptionService}
}

// Create implements ExceptionHandler.
func (h *ExceptionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req exception.CreateExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create exception decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.exceptionService.Create(r.Context(), chi.URLParam(r, "storeID"), req)
	if err != nil {
		slog.Error("Failed to create exception", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule exception created successfully", created)
}

// ListByMonth implements ExceptionHandler.
func (h *ExceptionHandlerImpl) ListByMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'year' must be a number", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'month' must be a number", nil)
		return
	}

	exceptions, err := h.exceptionService.ListByMonth(r.Context(), chi.URLParam(r, "storeID"), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, exceptions)
}

// GetByID implements ExceptionHandler.
func (h *ExceptionHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.exceptionService.Get(r.Context(), chi.URLParam(r, "storeID"), chi.URLParam(r, "exceptionID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements ExceptionHandler.
func (h *ExceptionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req exception.UpdateExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update exception decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "exceptionID")

	updated, err := h.exceptionService.Update(r.Context(), chi.URLParam(r, "storeID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule exception updated successfully", updated)
}

// Delete implements ExceptionHandler.
func (h *ExceptionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.exceptionService.Delete(r.Context(), chi.URLParam(r, "storeID"), chi.URLParam(r, "exceptionID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule exception deleted successfully", nil)
}
