// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/MKhiriev/go-inventory-keeper/internal/adapter"
	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/connectivity"
	"github.com/MKhiriev/go-inventory-keeper/internal/handler"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/metrics"
	"github.com/MKhiriev/go-inventory-keeper/internal/server"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/MKhiriev/go-inventory-keeper/internal/store"
	"github.com/MKhiriev/go-inventory-keeper/internal/workers"
)

// Runtime holds the wired components of one process.
type Runtime struct {
	Config   config.StructuredConfig
	Host     connectivity.HostCapability
	Metrics  *metrics.Metrics
	Storages *store.Storages
	Adapter  adapter.ServerAdapter
	Resolver *connectivity.Resolver
	Services *service.Services

	logger *logger.Logger
}

// NewRuntime opens the local database, restores the outbox and wires the
// services. The sync orchestrator is subscribed to resolver transitions.
func NewRuntime(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (*Runtime, error) {
	m := metrics.New()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storages: %w", err)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	host := connectivity.DetectHostCapability(cfg.App.Host, os.LookupEnv, os.Executable)
	resolver := connectivity.NewResolver(cfg.Adapter, cfg.Connectivity, host, serverAdapter, m, log)

	services, err := service.NewServices(storages, serverAdapter, resolver, cfg, m, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	if err = services.Outbox.Load(ctx); err != nil {
		storages.Close()
		return nil, fmt.Errorf("restore outbox: %w", err)
	}
	resolver.OnChange(services.Sync.OnTransition)

	log.Info().
		Str("host", host.String()).
		Str("target", string(resolver.Target())).
		Int("pending", services.Outbox.Len()).
		Msg("runtime ready")

	return &Runtime{
		Config:   cfg,
		Host:     host,
		Metrics:  m,
		Storages: storages,
		Adapter:  serverAdapter,
		Resolver: resolver,
		Services: services,
		logger:   log,
	}, nil
}

// Router returns the HTTP routes of the local fallback server.
func (r *Runtime) Router() (http.Handler, error) {
	handlers, err := handler.NewHandlers(r.Services, r.Storages, r.Config.Server, r.Metrics, r.logger)
	if err != nil {
		return nil, err
	}
	return handlers.HTTP.Init(), nil
}

// LocalServer builds the local fallback server over the runtime's services.
func (r *Runtime) LocalServer() (server.Server, error) {
	router, err := r.Router()
	if err != nil {
		return nil, err
	}
	return server.NewServer(router, r.Config.Server, r.logger)
}

// Workers returns the background loops: the resolver, the force-local flag
// watcher, the sync orchestrator and a single snapshot pull at start-up.
func (r *Runtime) Workers() *workers.Workers {
	return workers.NewWorkers(
		r.Resolver,
		connectivity.NewFlagWatcher(r.Config.Connectivity.ForceLocalFile, r.Resolver, r.logger),
		r.Services.Sync,
		workers.Func(r.initialPull),
	)
}

// initialPull refreshes the snapshots once so that a fresh install has
// something to show offline.
func (r *Runtime) initialPull(ctx context.Context) {
	if r.Resolver.LiveBase() == "" {
		return
	}
	if err := r.Services.Sync.PullAll(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "Runtime.initialPull").Msg("start-up pull incomplete")
	}
}

// Close releases the local database.
func (r *Runtime) Close() error {
	return r.Storages.Close()
}
