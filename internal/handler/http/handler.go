package http

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/metrics"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
)

// HealthChecker reports whether the local database is usable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	gateway       service.InventoryGateway
	syncService   service.SyncService
	appInfo       service.AppInfoService
	healthChecker HealthChecker

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewHandler serves the offline gateway of services. Every mutation it
// receives is queued.
func NewHandler(services *service.Services, health HealthChecker, m *metrics.Metrics, logger *logger.Logger) *Handler {
	var syncService service.SyncService
	if services.Sync != nil {
		syncService = services.Sync
	}
	return newHandler(services.OfflineGateway, syncService, services.AppInfo, health, m, logger)
}

func newHandler(
	gateway service.InventoryGateway,
	syncService service.SyncService,
	appInfo service.AppInfoService,
	health HealthChecker,
	m *metrics.Metrics,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		gateway:       gateway,
		syncService:   syncService,
		appInfo:       appInfo,
		healthChecker: health,
		metrics:       m,
		logger:        logger,
	}
}
