package http

import (
	"net/http"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/dashboard"
	"github.com/allahdad01/construction-erp-go/internal/handler/http/middleware"
	"github.com/allahdad01/construction-erp-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Stats implements DashboardHandler
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	result, err := h.dashboardService.Stats(r.Context(), ident, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
