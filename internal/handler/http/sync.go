package http

import (
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// postSync flushes the outbox and pulls every category. A partial failure
// still reports what was done next to the error.
func (h *Handler) postSync(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if h.syncService == nil {
		writeError(w, r, ErrSyncUnavailable, "Handler.postSync")
		return
	}

	res, err := h.syncService.Sync(r.Context())
	if err != nil {
		status := statusFromError(err)
		log.Warn().Err(err).Str("func", "Handler.postSync").Int("flushed", res.Flushed).Int("pending", res.Pending).Msg("sync finished with errors")
		utils.WriteJSON(w, models.Envelope[models.SyncResult]{
			Data:  res,
			Error: &models.ProblemDetails{Title: http.StatusText(status), Status: status, Detail: err.Error()},
		}, status)
		return
	}

	log.Info().Str("func", "Handler.postSync").Int("flushed", res.Flushed).Msg("sync finished")
	utils.WriteData(w, res, http.StatusOK)
}
