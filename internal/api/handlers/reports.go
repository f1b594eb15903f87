package handlers

import (
	"net/http"

	"github.com/gatherhall/server/internal/api/respond"
	"github.com/gatherhall/server/internal/domain/reports"
)

type ReportsHandler struct {
	Service *reports.Service
}

func NewReportsHandler(service *reports.Service) *ReportsHandler {
	return &ReportsHandler{Service: service}
}

// EventStats handles GET /api/reports/event-stats with live counts of
// both collections.
func (h *ReportsHandler) EventStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.EventStats(r.Context())
	if err != nil {
		respond.Internal(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, stats)
}
