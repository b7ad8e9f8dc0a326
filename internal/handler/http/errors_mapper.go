package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrUnknownLocation, http.StatusBadRequest},
	{ErrSyncUnavailable, http.StatusServiceUnavailable},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrRecordNotFound, http.StatusNotFound},
	{service.ErrNoLiveServer, http.StatusServiceUnavailable},
	{models.ErrUnknownCategory, http.StatusBadRequest},

	{adapter.ErrBadRequest, http.StatusBadRequest},
	{adapter.ErrUnprocessable, http.StatusUnprocessableEntity},
	{adapter.ErrNotFound, http.StatusNotFound},
	{adapter.ErrConflict, http.StatusConflict},
	{adapter.ErrNetworkUnavailable, http.StatusServiceUnavailable},
	{adapter.ErrServiceUnavailable, http.StatusServiceUnavailable},
	{adapter.ErrBadGateway, http.StatusBadGateway},

	{store.ErrStorage, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its problem details.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	ev := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		ev = logger.FromRequest(r).Error()
	}
	ev.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteProblem(w, status, err.Error())
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteProblem(w, http.StatusNotFound, "")
}
