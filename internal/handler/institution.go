package handler

import (
	"log/slog"
	"net/http"

	"github.com/Dewers-bit/LuandaFacultiesLocator/internal/service"
)

// InstitutionHandler serves the catalog to authenticated users.
type InstitutionHandler struct {
	institutions *service.InstitutionService
	logger       *slog.Logger
}

func NewInstitutionHandler(institutions *service.InstitutionService, logger *slog.Logger) *InstitutionHandler {
	return &InstitutionHandler{
		institutions: institutions,
		logger:       logger,
	}
}

// HandleList returns every institution as a JSON array.
//
// HTTP: GET /api/institutions
// Auth: session required (enforced by middleware; anonymous callers never
// reach this handler).
func (h *InstitutionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	institutions, err := h.institutions.List(r.Context())
	if err != nil {
		h.logger.Error("listing institutions", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, institutions)
}
