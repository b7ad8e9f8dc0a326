// Package service implements the offline-first layer of the inventory
// client: the snapshot store, the outbox of pending mutations, the overlay
// that lays pending mutations over snapshots, the local query engine, the
// request gateway with its fallbacks and the sync orchestrator.
package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/internal/connectivity"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// QueryService answers reads from the local snapshots with pending outbox
// mutations laid over them.
type QueryService interface {
	Query(ctx context.Context, q models.Query) (models.Page, error)
	Detail(ctx context.Context, category models.Category, id string) (models.Record, error)
	Filters(ctx context.Context) models.FilterOptions
	Locations(ctx context.Context, serial string) models.MachineLocations
}

// OutboxService records mutation intents made while the live server is
// unreachable and replays them later.
type OutboxService interface {
	Load(ctx context.Context) error
	// Refresh re-reads entries another process sharing the database may
	// have written.
	Refresh(ctx context.Context) error

	EnqueueCreate(ctx context.Context, category models.Category, item models.Record) (string, error)
	EnqueueUpdate(ctx context.Context, category models.Category, id string, patch models.Record) error
	EnqueueDelete(ctx context.Context, category models.Category, id string) error

	Flush(ctx context.Context, base string) (int, error)
	ClearAll(ctx context.Context) error

	Pending(category models.Category) []models.OutboxEntry
	Entries() []models.OutboxEntry
	Len() int
	PendingCounts() map[models.Category]int
}

// SyncService moves data between the live server and local state.
type SyncService interface {
	// PullAll refreshes every category snapshot and the filter options.
	PullAll(ctx context.Context) error
	// FlushOutbox replays pending mutations against the live server.
	FlushOutbox(ctx context.Context) (int, error)
	// Sync flushes and then pulls, reporting what happened.
	Sync(ctx context.Context) (models.SyncResult, error)
}

// SyncJob runs a [SyncService] in the background.
type SyncJob interface {
	Start(ctx context.Context)
	Stop()
}

// InventoryGateway is the single entry point for inventory reads and writes.
// Implementations decide whether a request reaches a server or is answered
// from local state.
type InventoryGateway interface {
	List(ctx context.Context, q models.Query) (models.Page, error)
	Detail(ctx context.Context, category models.Category, id string) (models.Record, error)
	Filters(ctx context.Context) (models.FilterOptions, error)
	Locations(ctx context.Context, serial string) (models.MachineLocations, error)

	Create(ctx context.Context, category models.Category, item models.Record) (models.Ack, error)
	Update(ctx context.Context, category models.Category, id string, patch models.Record) (models.Ack, error)
	Delete(ctx context.Context, category models.Category, id string) (models.Ack, error)
	Archive(ctx context.Context, id string, payload models.Record) (models.Ack, error)
	Sell(ctx context.Context, id string, payload models.Record) (models.Ack, error)
}

// BaseResolver reports where requests should go. [connectivity.Resolver]
// implements it.
type BaseResolver interface {
	State() connectivity.State
	LiveBase() string
	LocalBase() string
	LocalEligible() bool
}

// AppInfoService exposes build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
