package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log line per request and records it in the
// HTTP metrics.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.Status()
		h.metrics.ObserveHTTP(r.Method, status, duration)

		ev := log.Info()
		if status >= http.StatusInternalServerError {
			ev = log.Warn()
		}
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			ev = ev.Str("route", rctx.RoutePattern())
		}
		ev.Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
