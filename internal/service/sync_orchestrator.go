package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/connectivity"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/metrics"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// SyncOrchestrator pulls snapshots from the live server and replays the
// outbox against it, on demand and in the background.
type SyncOrchestrator struct {
	adapter   adapter.ServerAdapter
	snapshots *SnapshotStore
	outbox    OutboxService
	resolver  BaseResolver

	pageSize   int
	interval   time.Duration
	flushDelay time.Duration

	// cycleMu keeps flush and pull cycles from overlapping.
	cycleMu sync.Mutex

	mu     sync.Mutex
	jobCtx context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewSyncOrchestrator creates an orchestrator. The background job is idle
// until Start is called.
func NewSyncOrchestrator(
	serverAdapter adapter.ServerAdapter,
	snapshots *SnapshotStore,
	outbox OutboxService,
	resolver BaseResolver,
	adapterCfg config.Adapter,
	workersCfg config.Workers,
	m *metrics.Metrics,
	logger *logger.Logger,
) *SyncOrchestrator {
	pageSize := adapterCfg.PageSize
	if pageSize <= 0 {
		pageSize = models.BulkPageSize
	}
	return &SyncOrchestrator{
		adapter:    serverAdapter,
		snapshots:  snapshots,
		outbox:     outbox,
		resolver:   resolver,
		pageSize:   pageSize,
		interval:   workersCfg.SyncInterval,
		flushDelay: workersCfg.FlushDelay,
		metrics:    m,
		logger:     logger,
	}
}

// PullAll refreshes the snapshot of every category from the live server and
// then the filter options. Categories are pulled concurrently; a failing
// category keeps its previous snapshot and does not affect the others. The
// failures are joined into the returned error.
func (s *SyncOrchestrator) PullAll(ctx context.Context) error {
	live := s.resolver.LiveBase()
	if live == "" {
		return ErrNoLiveServer
	}
	start := time.Now()

	categories := models.Categories()
	errs := make([]error, len(categories))

	var wg sync.WaitGroup
	for i, c := range categories {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.pullCategory(ctx, live, c); err != nil {
				s.metrics.IncPullFailure(c)
				errs[i] = err
			}
		}()
	}
	wg.Wait()

	errs = append(errs, s.pullFilters(ctx, live))

	err := errors.Join(errs...)
	s.metrics.ObserveSync(metrics.OpPull, err == nil, time.Since(start))
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "SyncOrchestrator.PullAll").Msg("pull finished with errors")
	}
	return err
}

// pullCategory fetches category page by page until the collected records
// reach the reported total or a page comes back empty.
func (s *SyncOrchestrator) pullCategory(ctx context.Context, live string, category models.Category) error {
	log := logger.FromContext(ctx)

	records := make([]models.Record, 0, s.pageSize)
	for page := 1; ; page++ {
		p, err := s.adapter.List(ctx, live, models.Query{Category: category, Page: page, PageSize: s.pageSize})
		if err != nil {
			log.Err(err).Str("func", "SyncOrchestrator.pullCategory").Str("category", category.String()).Int("page", page).Msg("error pulling page")
			return fmt.Errorf("pull %s page %d: %w", category, page, err)
		}
		records = append(records, p.Data...)
		if len(p.Data) == 0 || len(records) >= p.Total {
			break
		}
	}

	if err := s.snapshots.ReplaceCategory(ctx, category, records); err != nil {
		return err
	}
	log.Debug().Str("func", "SyncOrchestrator.pullCategory").Str("category", category.String()).Int("records", len(records)).Msg("category pulled")
	return nil
}

// pullFilters stores the live filter options, or options derived from the
// fresh snapshots when the server supplies none.
func (s *SyncOrchestrator) pullFilters(ctx context.Context, live string) error {
	opts, err := s.adapter.Filters(ctx, live)
	if err != nil || len(opts) == 0 {
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).Str("func", "SyncOrchestrator.pullFilters").Msg("live filters unavailable, deriving")
		}
		byCategory := make(map[models.Category][]models.Record, 3)
		for _, c := range models.MachineCategories() {
			byCategory[c] = s.snapshots.Get(ctx, c)
		}
		opts = deriveFilters(byCategory)
	}
	return s.snapshots.SetFilters(ctx, opts)
}

// FlushOutbox replays the outbox against the live server. When at least one
// entry was applied the snapshots are refreshed, and a fully drained outbox
// is cleared. It does nothing when the outbox is empty.
func (s *SyncOrchestrator) FlushOutbox(ctx context.Context) (int, error) {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	applied, err := s.replay(ctx)
	if applied > 0 {
		_ = s.PullAll(ctx)
		s.clearIfDrained(ctx, err)
	}
	return applied, err
}

// Sync flushes the outbox and pulls every category.
func (s *SyncOrchestrator) Sync(ctx context.Context) (models.SyncResult, error) {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	applied, flushErr := s.replay(ctx)
	pullErr := s.PullAll(ctx)
	if applied > 0 {
		s.clearIfDrained(ctx, flushErr)
	}

	return models.SyncResult{
		Flushed: applied,
		Pending: s.outbox.Len(),
		Pulled:  pullErr == nil,
	}, errors.Join(flushErr, pullErr)
}

func (s *SyncOrchestrator) replay(ctx context.Context) (int, error) {
	if err := s.outbox.Refresh(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "SyncOrchestrator.replay").Msg("error refreshing outbox")
	}
	if s.outbox.Len() == 0 {
		return 0, nil
	}
	live := s.resolver.LiveBase()
	if live == "" {
		return 0, ErrNoLiveServer
	}

	start := time.Now()
	applied, err := s.outbox.Flush(ctx, live)
	s.metrics.ObserveSync(metrics.OpFlush, err == nil, time.Since(start))

	logger.FromContext(ctx).Info().
		Err(err).
		Str("func", "SyncOrchestrator.replay").
		Int("applied", applied).
		Int("pending", s.outbox.Len()).
		Msg("outbox flushed")
	return applied, err
}

func (s *SyncOrchestrator) clearIfDrained(ctx context.Context, flushErr error) {
	if flushErr != nil || s.outbox.Len() != 0 {
		return
	}
	if err := s.outbox.ClearAll(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "SyncOrchestrator.clearIfDrained").Msg("error clearing drained outbox")
	}
}

// OnTransition flushes the outbox in the background when connectivity comes
// back: the environment went online, or the resolver switched from the local
// server to the live one. Register it with [connectivity.Resolver.OnChange].
// Transitions are ignored while the job is not running.
func (s *SyncOrchestrator) OnTransition(prev, next connectivity.State) {
	cameOnline := !prev.Online && next.Online
	backToLive := prev.Target == connectivity.TargetLocal && next.Target == connectivity.TargetLive
	if !cameOnline && !backToLive {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return
	}
	ctx := s.jobCtx
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if _, err := s.FlushOutbox(ctx); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "SyncOrchestrator.OnTransition").Msg("flush after reconnect failed")
		}
	}()
}

// Start stops any previously running job, then launches a background
// goroutine that flushes the outbox once after the flush delay and then
// flushes and pulls every sync interval. If the interval is zero or negative
// it defaults to 5 minutes. The goroutine exits when ctx is cancelled or Stop
// is called.
func (s *SyncOrchestrator) Start(ctx context.Context) {
	interval := s.interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.jobCtx = jobCtx
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		log := logger.FromContext(jobCtx)

		delay := time.NewTimer(s.flushDelay)
		defer delay.Stop()
		select {
		case <-jobCtx.Done():
			return
		case <-delay.C:
			if _, err := s.FlushOutbox(jobCtx); err != nil {
				log.Warn().Err(err).Str("func", "SyncOrchestrator.Start").Msg("start-up flush failed")
			}
		}

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := s.Sync(jobCtx); err != nil {
					log.Warn().Err(err).Str("func", "SyncOrchestrator.Start").Msg("periodic sync failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the job is not running.
func (s *SyncOrchestrator) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// Run starts the job and keeps it running until ctx is cancelled. It lets
// the orchestrator run as a worker.
func (s *SyncOrchestrator) Run(ctx context.Context) {
	s.Start(ctx)
	<-ctx.Done()
	s.Stop()
}
