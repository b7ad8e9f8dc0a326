package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// PendingSource exposes the pending entries of one category. [Outbox]
// implements it. Refresh is called once per query so that entries queued by
// another process sharing the database are visible.
type PendingSource interface {
	Refresh(ctx context.Context) error
	Pending(category models.Category) []models.OutboxEntry
}

type localQueryService struct {
	snapshots *SnapshotStore
	pending   PendingSource

	logger *logger.Logger
}

// NewLocalQueryService returns a [QueryService] answering from snapshots
// with the pending mutations of pending laid over them.
func NewLocalQueryService(snapshots *SnapshotStore, pending PendingSource, logger *logger.Logger) QueryService {
	return &localQueryService{
		snapshots: snapshots,
		pending:   pending,
		logger:    logger,
	}
}

func (s *localQueryService) Query(ctx context.Context, q models.Query) (models.Page, error) {
	if !q.Category.Valid() {
		return models.Page{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, models.ErrUnknownCategory)
	}
	s.refresh(ctx)
	return RunQuery(s.view(ctx, q.Category), q), nil
}

func (s *localQueryService) Detail(ctx context.Context, category models.Category, id string) (models.Record, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, models.ErrUnknownCategory)
	}
	s.refresh(ctx)
	for _, rec := range s.view(ctx, category) {
		if rec.ID(category) == id {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %s", ErrRecordNotFound, category, id)
}

func (s *localQueryService) Filters(ctx context.Context) models.FilterOptions {
	return s.snapshots.DerivedFilters(ctx)
}

func (s *localQueryService) Locations(ctx context.Context, serial string) models.MachineLocations {
	s.refresh(ctx)
	byCategory := make(map[models.Category][]models.Record, 3)
	for _, c := range models.MachineCategories() {
		byCategory[c] = s.view(ctx, c)
	}
	return locationsBySerial(byCategory, serial)
}

// refresh falls back to the entries already held when the outbox cannot be
// re-read.
func (s *localQueryService) refresh(ctx context.Context) {
	if err := s.pending.Refresh(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "localQueryService.refresh").Msg("serving pending entries from memory")
	}
}

// view is the overlaid snapshot of category.
func (s *localQueryService) view(ctx context.Context, category models.Category) []models.Record {
	records, conflicted := overlay(category, s.snapshots.Get(ctx, category), s.pending.Pending(category))
	if conflicted > 0 {
		logger.FromContext(ctx).Debug().
			Err(ErrConflictedTarget).
			Str("func", "localQueryService.view").
			Str("category", category.String()).
			Int("updates", conflicted).
			Msg("pending updates without target dropped from view")
	}
	return records
}
