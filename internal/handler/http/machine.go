package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/allahdad01/construction-erp-go/internal/domain/machine"
	"github.com/allahdad01/construction-erp-go/internal/handler/http/middleware"
	"github.com/allahdad01/construction-erp-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MachineHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type machineHandlerImpl struct {
	machineService machine.MachineService
}

func NewMachineHandler(machineService machine.MachineService) MachineHandler {
	return &machineHandlerImpl{machineService: machineService}
}

// Create implements MachineHandler
func (h *machineHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var req machine.CreateMachineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create machine decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.machineService.Create(r.Context(), ident, req)
	if err != nil {
		slog.Error("Create machine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Machine created", result)
}

// Get implements MachineHandler
func (h *machineHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Machine ID is required", nil)
		return
	}

	result, err := h.machineService.Get(r.Context(), ident, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements MachineHandler
func (h *machineHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	result, err := h.machineService.List(r.Context(), ident)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements MachineHandler
func (h *machineHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Machine ID is required", nil)
		return
	}

	var req machine.UpdateMachineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.machineService.Update(r.Context(), ident, id, req)
	if err != nil {
		slog.Error("Update machine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Machine updated", result)
}

// Delete implements MachineHandler
func (h *machineHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Machine ID is required", nil)
		return
	}

	if err := h.machineService.Delete(r.Context(), ident, id); err != nil {
		slog.Error("Delete machine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Machine deleted", nil)
}
