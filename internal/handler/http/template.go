package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/albapay/albapay-backend-go/internal/domain/template"
	"github.com/albapay/albapay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TemplateHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TemplateHandlerImpl struct {
	templateService template.TemplateService
}

func NewTemplateHandler(templateService template.TemplateService) TemplateHandler {
	return &TemplateHandlerImpl{templateService: templateService}
}

// Create implements TemplateHandler.
func (h *TemplateHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req template.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create template decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreID = chi.URLParam(r, "storeID")

	created, err := h.templateService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create template", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule template created successfully", created)
}

// List implements TemplateHandler.
func (h *TemplateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templateService.List(r.Context(), chi.URLParam(r, "storeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, templates)
}

// GetByID implements TemplateHandler.
func (h *TemplateHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	found, err := h.templateService.Get(r.Context(), chi.URLParam(r, "storeID"), chi.URLParam(r, "templateID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements TemplateHandler.
func (h *TemplateHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req template.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update template decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "templateID")

	updated, err := h.templateService.Update(r.Context(), chi.URLParam(r, "storeID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule template updated successfully", updated)
}

// Delete implements TemplateHandler.
func (h *TemplateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.templateService.Delete(r.Context(), chi.URLParam(r, "storeID"), chi.URLParam(r, "templateID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule template deleted successfully", nil)
}
