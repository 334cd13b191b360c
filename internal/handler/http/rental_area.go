package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/allahdad01/construction-erp-go/internal/domain/rentalarea"
	"github.com/allahdad01/construction-erp-go/internal/handler/http/middleware"
	"github.com/allahdad01/construction-erp-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RentalAreaHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type rentalAreaHandlerImpl struct {
	areaService rentalarea.AreaService
}

func NewRentalAreaHandler(areaService rentalarea.AreaService) RentalAreaHandler {
	return &rentalAreaHandlerImpl{areaService: areaService}
}

// Create implements RentalAreaHandler
func (h *rentalAreaHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var req rentalarea.CreateAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create rental area decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.areaService.Create(r.Context(), ident, req)
	if err != nil {
		slog.Error("Create rental area service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Rental area created", result)
}

// Get implements RentalAreaHandler
func (h *rentalAreaHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Rental area ID is required", nil)
		return
	}

	result, err := h.areaService.Get(r.Context(), ident, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements RentalAreaHandler
func (h *rentalAreaHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	result, err := h.areaService.List(r.Context(), ident)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements RentalAreaHandler
func (h *rentalAreaHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Rental area ID is required", nil)
		return
	}

	var req rentalarea.UpdateAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.areaService.Update(r.Context(), ident, id, req)
	if err != nil {
		slog.Error("Update rental area service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rental area updated", result)
}

// Delete implements RentalAreaHandler
func (h *rentalAreaHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Rental area ID is required", nil)
		return
	}

	if err := h.areaService.Delete(r.Context(), ident, id); err != nil {
		slog.Error("Delete rental area service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rental area deleted", nil)
}
