package handler

import (
	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/handler/http"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/metrics"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
)

// Handlers groups the transport handlers of the local fallback server.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the handlers enabled by cfg. health backs the /health
// endpoint and may be nil.
func NewHandlers(
	services *service.Services,
	health http.HealthChecker,
	cfg config.Server,
	m *metrics.Metrics,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" || services == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, health, m, logger)}, nil
}
