package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/connectivity"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/metrics"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type gateway struct {
	resolver BaseResolver
	adapter  adapter.ServerAdapter
	offline  InventoryGateway

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewGateway returns the [InventoryGateway] used by clients. Requests go to
// the server the resolver currently targets. When that server cannot be
// reached and the host has a local fallback:
//   - reads retry against the local server (unless it was the target
//     already) and are finally answered by offline;
//   - mutations are handed to offline, which queues them.
//
// Errors other than unreachability are returned unchanged.
func NewGateway(resolver BaseResolver, serverAdapter adapter.ServerAdapter, offline InventoryGateway, m *metrics.Metrics, logger *logger.Logger) InventoryGateway {
	return &gateway{
		resolver: resolver,
		adapter:  serverAdapter,
		offline:  offline,
		metrics:  m,
		logger:   logger,
	}
}

func (g *gateway) List(ctx context.Context, q models.Query) (models.Page, error) {
	return read(ctx, g, "gateway.List",
		func(base string) (models.Page, error) { return g.adapter.List(ctx, base, q) },
		func() (models.Page, error) { return g.offline.List(ctx, q) },
	)
}

func (g *gateway) Detail(ctx context.Context, category models.Category, id string) (models.Record, error) {
	return read(ctx, g, "gateway.Detail",
		func(base string) (models.Record, error) { return g.adapter.Detail(ctx, base, category, id) },
		func() (models.Record, error) { return g.offline.Detail(ctx, category, id) },
	)
}

func (g *gateway) Filters(ctx context.Context) (models.FilterOptions, error) {
	return read(ctx, g, "gateway.Filters",
		func(base string) (models.FilterOptions, error) { return g.adapter.Filters(ctx, base) },
		func() (models.FilterOptions, error) { return g.offline.Filters(ctx) },
	)
}

func (g *gateway) Locations(ctx context.Context, serial string) (models.MachineLocations, error) {
	return read(ctx, g, "gateway.Locations",
		func(base string) (models.MachineLocations, error) { return g.adapter.Locations(ctx, base, serial) },
		func() (models.MachineLocations, error) { return g.offline.Locations(ctx, serial) },
	)
}

func (g *gateway) Create(ctx context.Context, category models.Category, item models.Record) (models.Ack, error) {
	return g.write(ctx, "gateway.Create",
		func(base string) (models.Ack, error) {
			rec, err := g.adapter.Create(ctx, base, category, item)
			return ackFrom(category, "", rec), err
		},
		func() (models.Ack, error) { return g.offline.Create(ctx, category, item) },
	)
}

func (g *gateway) Update(ctx context.Context, category models.Category, id string, patch models.Record) (models.Ack, error) {
	return g.write(ctx, "gateway.Update",
		func(base string) (models.Ack, error) {
			rec, err := g.adapter.Update(ctx, base, category, id, patch)
			return ackFrom(category, id, rec), err
		},
		func() (models.Ack, error) { return g.offline.Update(ctx, category, id, patch) },
	)
}

func (g *gateway) Delete(ctx context.Context, category models.Category, id string) (models.Ack, error) {
	return g.write(ctx, "gateway.Delete",
		func(base string) (models.Ack, error) {
			err := g.adapter.Delete(ctx, base, category, id)
			// the local server queues everything it is sent
			return models.Ack{ID: id, Queued: g.resolver.State().Target == connectivity.TargetLocal}, err
		},
		func() (models.Ack, error) { return g.offline.Delete(ctx, category, id) },
	)
}

func (g *gateway) Archive(ctx context.Context, id string, payload models.Record) (models.Ack, error) {
	return g.write(ctx, "gateway.Archive",
		func(base string) (models.Ack, error) {
			rec, err := g.adapter.Archive(ctx, base, id, payload)
			return ackFrom(models.Archived, "", rec), err
		},
		func() (models.Ack, error) { return g.offline.Archive(ctx, id, payload) },
	)
}

func (g *gateway) Sell(ctx context.Context, id string, payload models.Record) (models.Ack, error) {
	return g.write(ctx, "gateway.Sell",
		func(base string) (models.Ack, error) {
			rec, err := g.adapter.Sell(ctx, base, id, payload)
			return ackFrom(models.Sold, "", rec), err
		},
		func() (models.Ack, error) { return g.offline.Sell(ctx, id, payload) },
	)
}

// read tries the resolved target, then the local server, then local state.
func read[T any](ctx context.Context, g *gateway, fn string, remote func(base string) (T, error), local func() (T, error)) (T, error) {
	log := logger.FromContext(ctx)
	state := g.resolver.State()

	v, err := remote(state.Base)
	if err == nil || !adapter.IsUnavailable(err) || !g.resolver.LocalEligible() {
		return v, err
	}
	log.Warn().Err(err).Str("func", fn).Str("base", state.Base).Msg("server unreachable, falling back")

	if state.Target != connectivity.TargetLocal {
		v, err = remote(g.resolver.LocalBase())
		if err == nil {
			g.metrics.IncFallback(metrics.FallbackLocalServer)
			return v, nil
		}
		if !adapter.IsUnavailable(err) {
			return v, err
		}
		log.Debug().Err(err).Str("func", fn).Msg("local server unreachable")
	}

	g.metrics.IncFallback(metrics.FallbackLocalQuery)
	return local()
}

// write sends a mutation to the resolved target and queues it when the
// target cannot be reached.
func (g *gateway) write(ctx context.Context, fn string, remote func(base string) (models.Ack, error), queue func() (models.Ack, error)) (models.Ack, error) {
	state := g.resolver.State()

	ack, err := remote(state.Base)
	if err == nil || !adapter.IsUnavailable(err) || !g.resolver.LocalEligible() {
		return ack, err
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", fn).Str("base", state.Base).Msg("server unreachable, mutation queued")
	g.metrics.IncFallback(metrics.FallbackQueued)
	return queue()
}

// ackFrom builds the acknowledgement of a mutation answered by a server. The
// local fallback server answers with an acknowledgement of its own instead
// of the stored record.
func ackFrom(category models.Category, id string, rec models.Record) models.Ack {
	if rec == nil {
		return models.Ack{ID: id}
	}
	if queued, _ := rec["queued"].(bool); queued {
		ack := models.Ack{Queued: true, ID: rec.String("id")}
		if m, ok := rec["machine"].(map[string]any); ok {
			ack.Record = m
		}
		if ack.ID == "" {
			ack.ID = id
		}
		return ack
	}

	ack := models.Ack{ID: rec.ID(category), Record: rec}
	if ack.ID == "" {
		ack.ID = id
	}
	return ack
}
