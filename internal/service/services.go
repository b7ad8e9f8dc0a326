package service

import (
	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/metrics"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
)

// Services wires the offline-first layer together.
type Services struct {
	Snapshots *SnapshotStore
	Outbox    *Outbox
	Query     QueryService

	// OfflineGateway answers from local state and queues every mutation.
	// The local fallback server serves it.
	OfflineGateway InventoryGateway
	// Gateway targets the resolved server and falls back to local state.
	Gateway InventoryGateway

	Sync    *SyncOrchestrator
	AppInfo AppInfoService
}

// NewServices builds the services over the local storages. Both gateways are
// wrapped with validation. The outbox starts empty; load it with
// Outbox.Load before serving.
func NewServices(
	storages *store.Storages,
	serverAdapter adapter.ServerAdapter,
	resolver BaseResolver,
	cfg config.StructuredConfig,
	m *metrics.Metrics,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	snapshots := NewSnapshotStore(storages.CacheRepository, m, logger)
	outbox := NewOutbox(storages.OutboxRepository, serverAdapter, utils.NewUUIDGenerator(), cfg.Workers.FlushWarnAttempts, m, logger)
	query := NewLocalQueryService(snapshots, outbox, logger)

	offline := NewOfflineGateway(query, outbox, logger)
	online := NewGateway(resolver, serverAdapter, offline, m, logger)

	return &Services{
		Snapshots:      snapshots,
		Outbox:         outbox,
		Query:          query,
		OfflineGateway: NewGatewayValidationService().Wrap(offline),
		Gateway:        NewGatewayValidationService().Wrap(online),
		Sync:           NewSyncOrchestrator(serverAdapter, snapshots, outbox, resolver, cfg.Adapter, cfg.Workers, m, logger),
		AppInfo:        appInfo,
	}, nil
}
