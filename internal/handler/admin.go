package handler

import (
	"log/slog"
	"net/http"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/service"
)

// AdminHandler serves the statistics endpoint. Authorization (session +
// admin flag) happens in the session middleware before requests get here.
type AdminHandler struct {
	stats  *service.StatsService
	logger *slog.Logger
}

func NewAdminHandler(stats *service.StatsService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		stats:  stats,
		logger: logger,
	}
}

// HandleStats returns visit, user and institution totals plus the ten most
// recent logins, newest first.
//
// HTTP: GET /api/admin/stats
func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	overview, err := h.stats.Overview(r.Context())
	if err != nil {
		h.logger.Error("building admin stats", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, overview)
}
