package http

import (
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	version := h.appInfo.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version))
}

// getHealth reports whether the local database answers.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	if h.healthChecker != nil {
		if err := h.healthChecker.Ping(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "Handler.getHealth").Msg("database unavailable")
			utils.WriteJSON(w, models.HealthResponse{OK: false, Database: "unavailable"}, http.StatusServiceUnavailable)
			return
		}
	}
	utils.WriteJSON(w, models.HealthResponse{OK: true, Database: "sqlite"}, http.StatusOK)
}
