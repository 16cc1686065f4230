package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/albapay/albapay-backend-go/internal/domain/store"
	"github.com/albapay/albapay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type StoreHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StoreHandlerImpl struct {
	storeService store.StoreService
}

func NewStoreHandler(storeService store.StoreService) StoreHandler {
	return &StoreHandlerImpl{storeService: storeService}
}

// Create implements StoreHandler.
func (h *StoreHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req store.CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create store decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.storeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create store", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Store created successfully", created)
}

// List implements StoreHandler.
func (h *StoreHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	stores, err := h.storeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stores)
}

// GetByID implements StoreHandler.
func (h *StoreHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.storeService.Get(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements StoreHandler.
func (h *StoreHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req store.UpdateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update store decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "storeID")

	updated, err := h.storeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store updated successfully", updated)
}

// Delete implements StoreHandler.
func (h *StoreHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.storeService.Delete(r.Context(), chi.URLParam(r, "storeID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store deleted successfully", nil)
}
