package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/metrics"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// derivedFilterFields are the machine attributes offered as filter options
// when the live server never supplied its own set.
var derivedFilterFields = []string{"model", "type", "salesman"}

// SnapshotStore keeps the last known copy of every category in the local
// cache. Reads never fail: a missing or unreadable snapshot is empty.
type SnapshotStore struct {
	repo store.CacheRepository
	now  func() time.Time

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewSnapshotStore returns a store over repo.
func NewSnapshotStore(repo store.CacheRepository, m *metrics.Metrics, logger *logger.Logger) *SnapshotStore {
	return &SnapshotStore{
		repo:    repo,
		now:     time.Now,
		metrics: m,
		logger:  logger,
	}
}

// ReplaceCategory atomically replaces the snapshot of category. Other
// categories are untouched.
func (s *SnapshotStore) ReplaceCategory(ctx context.Context, category models.Category, records []models.Record) error {
	log := logger.FromContext(ctx)

	if records == nil {
		records = []models.Record{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		log.Err(err).Str("func", "SnapshotStore.ReplaceCategory").Str("category", category.String()).Msg("error encoding snapshot")
		return fmt.Errorf("%w: encode %s snapshot: %w", store.ErrStorage, category, err)
	}

	if err = s.repo.Put(ctx, category.SnapshotKey(), raw, s.now().UTC()); err != nil {
		log.Err(err).Str("func", "SnapshotStore.ReplaceCategory").Str("category", category.String()).Msg("error writing snapshot")
		return fmt.Errorf("replace %s snapshot: %w", category, err)
	}

	s.metrics.SetSnapshotSize(category, len(records))
	log.Debug().Str("func", "SnapshotStore.ReplaceCategory").Str("category", category.String()).Int("records", len(records)).Msg("snapshot replaced")
	return nil
}

// Snapshot returns the stored snapshot of category, or an empty one.
func (s *SnapshotStore) Snapshot(ctx context.Context, category models.Category) models.Snapshot {
	snap := models.Snapshot{Category: category, Records: []models.Record{}}

	raw, fetchedAt, ok := s.read(ctx, category.SnapshotKey())
	if !ok {
		return snap
	}

	var records []models.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "SnapshotStore.Snapshot").
			Str("category", category.String()).
			Msg("unreadable snapshot, treating as empty")
		return snap
	}
	if records != nil {
		snap.Records = records
	}
	snap.FetchedAt = fetchedAt
	return snap
}

// Get returns the records of category's snapshot.
func (s *SnapshotStore) Get(ctx context.Context, category models.Category) []models.Record {
	return s.Snapshot(ctx, category).Records
}

// SetFilters stores the filter options supplied by the live server.
func (s *SnapshotStore) SetFilters(ctx context.Context, opts models.FilterOptions) error {
	raw, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("%w: encode filters: %w", store.ErrStorage, err)
	}
	if err = s.repo.Put(ctx, models.SnapshotFiltersKey, raw, s.now().UTC()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "SnapshotStore.SetFilters").Msg("error writing filters")
		return fmt.Errorf("store filters: %w", err)
	}
	return nil
}

// StoredFilters returns the filter options last stored by [SetFilters].
func (s *SnapshotStore) StoredFilters(ctx context.Context) (models.FilterOptions, bool) {
	raw, _, ok := s.read(ctx, models.SnapshotFiltersKey)
	if !ok {
		return nil, false
	}
	var opts models.FilterOptions
	if err := json.Unmarshal(raw, &opts); err != nil || opts == nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "SnapshotStore.StoredFilters").Msg("unreadable filters snapshot")
		return nil, false
	}
	return opts, true
}

// DerivedFilters returns the stored filter options verbatim when present and
// otherwise derives them from the machine snapshots.
func (s *SnapshotStore) DerivedFilters(ctx context.Context) models.FilterOptions {
	if opts, ok := s.StoredFilters(ctx); ok {
		return opts
	}

	byCategory := make(map[models.Category][]models.Record, 3)
	for _, c := range models.MachineCategories() {
		byCategory[c] = s.Get(ctx, c)
	}
	return deriveFilters(byCategory)
}

// LocationsBySerial returns the ids of machines with serial in every machine
// category snapshot.
func (s *SnapshotStore) LocationsBySerial(ctx context.Context, serial string) models.MachineLocations {
	byCategory := make(map[models.Category][]models.Record, 3)
	for _, c := range models.MachineCategories() {
		byCategory[c] = s.Get(ctx, c)
	}
	return locationsBySerial(byCategory, serial)
}

func (s *SnapshotStore) read(ctx context.Context, key string) ([]byte, time.Time, bool) {
	raw, at, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrCacheMiss) {
			logger.FromContext(ctx).Err(err).Str("func", "SnapshotStore.read").Str("key", key).Msg("error reading cache")
		}
		return nil, time.Time{}, false
	}
	return raw, at, true
}

// deriveFilters collects distinct non-blank model, type and salesman values
// across the machine categories, sorted lexically, and adds the static
// location and page size lists.
func deriveFilters(byCategory map[models.Category][]models.Record) models.FilterOptions {
	sets := make(map[string]map[string]struct{}, len(derivedFilterFields))
	for _, f := range derivedFilterFields {
		sets[f] = map[string]struct{}{}
	}

	for _, c := range models.MachineCategories() {
		for _, rec := range byCategory[c] {
			m := rec.Machine(c)
			for _, f := range derivedFilterFields {
				if v := strings.TrimSpace(m.String(f)); v != "" {
					sets[f][v] = struct{}{}
				}
			}
		}
	}

	opts := make(models.FilterOptions, len(derivedFilterFields)+2)
	for _, f := range derivedFilterFields {
		values := make([]string, 0, len(sets[f]))
		for v := range sets[f] {
			values = append(values, v)
		}
		sort.Strings(values)

		options := make([]models.FilterOption, 0, len(values))
		for _, v := range values {
			options = append(options, models.FilterOption{Label: v, Data: v})
		}
		opts[f] = options
	}

	opts["location"] = []models.FilterOption{
		{Label: "Located", Data: string(models.Located)},
		{Label: "Sold", Data: string(models.Sold)},
		{Label: "Archived", Data: string(models.Archived)},
	}
	sizes := []int{10, 20, 30, 40, 50, 100}
	opts["pageSize"] = make([]models.FilterOption, 0, len(sizes))
	for _, n := range sizes {
		opts["pageSize"] = append(opts["pageSize"], models.FilterOption{Label: fmt.Sprint(n), Data: n})
	}
	return opts
}

// locationsBySerial lists, per machine category, the ids of records whose
// machine carries serial. An empty serial matches nothing.
func locationsBySerial(byCategory map[models.Category][]models.Record, serial string) models.MachineLocations {
	loc := models.MachineLocations{Located: []string{}, Archived: []string{}, Sold: []string{}}
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return loc
	}

	for _, c := range models.MachineCategories() {
		for _, rec := range byCategory[c] {
			if rec.Machine(c).String("serialNumber") != serial {
				continue
			}
			id := rec.ID(c)
			switch c {
			case models.Located:
				loc.Located = append(loc.Located, id)
			case models.Archived:
				loc.Archived = append(loc.Archived, id)
			case models.Sold:
				loc.Sold = append(loc.Sold, id)
			}
		}
	}
	return loc
}
