// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// maxProbeTimeout is the exclusive upper bound for reachability probes.
const maxProbeTimeout = time.Second

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := validateApp(cfg.App); err != nil {
		return err
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if err := validateAdapter(cfg.Adapter); err != nil {
		return err
	}

	if cfg.Connectivity.ResolveInterval <= 0 {
		return ErrInvalidConnectivityConfigs
	}

	return validateWorkers(cfg.Workers)
}

func (cfg *ClientConfig) validate() error {
	if err := validateApp(cfg.App.App()); err != nil {
		return err
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.LiveAddress == "" && cfg.Adapter.LocalAddress == "" {
		return fmt.Errorf("%w: no live or local address", ErrInvalidAdapterConfigs)
	}

	if err := validateAdapter(cfg.Adapter); err != nil {
		return err
	}

	if cfg.Connectivity.ResolveInterval <= 0 {
		return ErrInvalidConnectivityConfigs
	}

	return validateWorkers(cfg.Workers)
}

func validateApp(app App) error {
	switch app.Host {
	case "", HostAuto, HostBrowser, HostPackaged:
		return nil
	}
	return fmt.Errorf("%w: unknown host mode %q", ErrInvalidAppConfigs, app.Host)
}

func validateAdapter(a Adapter) error {
	if a.RequestTimeout <= 0 || a.PageSize <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if a.ProbeTimeout <= 0 || a.ProbeTimeout >= maxProbeTimeout {
		return fmt.Errorf("%w: probe timeout must be below %s", ErrInvalidConnectivityConfigs, maxProbeTimeout)
	}

	return nil
}

func validateWorkers(w Workers) error {
	if w.SyncInterval <= 0 || w.FlushDelay < 0 || w.FlushWarnAttempts < 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}
