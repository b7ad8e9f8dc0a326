package service

import (
	"context"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

type offlineGateway struct {
	query  QueryService
	outbox OutboxService

	logger *logger.Logger
}

// NewOfflineGateway returns an [InventoryGateway] that never leaves the
// machine: reads are answered by query and every mutation is recorded in
// outbox and acknowledged as queued. The local fallback server serves it,
// and the online gateway falls back to it.
func NewOfflineGateway(query QueryService, outbox OutboxService, logger *logger.Logger) InventoryGateway {
	return &offlineGateway{
		query:  query,
		outbox: outbox,
		logger: logger,
	}
}

func (g *offlineGateway) List(ctx context.Context, q models.Query) (models.Page, error) {
	return g.query.Query(ctx, q)
}

func (g *offlineGateway) Detail(ctx context.Context, category models.Category, id string) (models.Record, error) {
	return g.query.Detail(ctx, category, id)
}

func (g *offlineGateway) Filters(ctx context.Context) (models.FilterOptions, error) {
	return g.query.Filters(ctx), nil
}

func (g *offlineGateway) Locations(ctx context.Context, serial string) (models.MachineLocations, error) {
	return g.query.Locations(ctx, serial), nil
}

func (g *offlineGateway) Create(ctx context.Context, category models.Category, item models.Record) (models.Ack, error) {
	id, err := g.outbox.EnqueueCreate(ctx, category, item)
	if err != nil {
		return models.Ack{}, err
	}

	rec := models.Record{}
	if item != nil {
		rec = item.Clone()
	}
	rec.SetID(category, id)
	return models.Ack{Queued: true, ID: id, Record: rec}, nil
}

func (g *offlineGateway) Update(ctx context.Context, category models.Category, id string, patch models.Record) (models.Ack, error) {
	if err := g.outbox.EnqueueUpdate(ctx, category, id, patch); err != nil {
		return models.Ack{}, err
	}
	return models.Ack{Queued: true, ID: id}, nil
}

func (g *offlineGateway) Delete(ctx context.Context, category models.Category, id string) (models.Ack, error) {
	if err := g.outbox.EnqueueDelete(ctx, category, id); err != nil {
		return models.Ack{}, err
	}
	return models.Ack{Queued: true, ID: id}, nil
}

func (g *offlineGateway) Archive(ctx context.Context, id string, payload models.Record) (models.Ack, error) {
	return g.move(ctx, models.Archived, id, payload)
}

func (g *offlineGateway) Sell(ctx context.Context, id string, payload models.Record) (models.Ack, error) {
	return g.move(ctx, models.Sold, id, payload)
}

// move queues an archive or sale of located machine id as a create in
// target naming the source machine, followed by a delete of the located
// record. The create also carries the machine document as currently known,
// so a machine that never reached the server can still be moved.
func (g *offlineGateway) move(ctx context.Context, target models.Category, id string, payload models.Record) (models.Ack, error) {
	log := logger.FromContext(ctx)

	item := models.Record{}
	if payload != nil {
		item = payload.Clone()
	}
	item[sourceIDField] = id
	if len(item.Machine(target)) == 0 {
		machine, err := g.query.Detail(ctx, models.Located, id)
		if err == nil {
			item["machine"] = map[string]any(machine.Clone())
		} else {
			log.Debug().Err(err).Str("func", "offlineGateway.move").Str("id", id).Msg("source machine not in snapshot")
		}
	}

	newID, err := g.outbox.EnqueueCreate(ctx, target, item)
	if err != nil {
		return models.Ack{}, err
	}
	if err = g.outbox.EnqueueDelete(ctx, models.Located, id); err != nil {
		return models.Ack{}, err
	}

	item.SetID(target, newID)
	log.Info().
		Str("func", "offlineGateway.move").
		Str("target", target.String()).
		Str("source_id", id).
		Str("id", newID).
		Msg("machine move queued")
	return models.Ack{Queued: true, ID: newID, Record: item}, nil
}
