package handlers

import (
	"net/http"

	"github.com/DominicRaja2005/library-management-system/internal/service"
	"github.com/DominicRaja2005/library-management-system/internal/utils"
)

type StatsHandler struct {
	Service *service.InventoryService
}

// GET /api/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.CatalogStats(r.Context())
	if err != nil {
		writeServiceError(w, "Error fetching stats", err)
		return
	}

	utils.JSONSuccess(w, http.StatusOK, utils.Envelope{Data: stats})
}
