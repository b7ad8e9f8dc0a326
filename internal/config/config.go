// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Host modes accepted by [App.Host].
const (
	// HostAuto detects the host capability at start-up.
	HostAuto = "auto"
	// HostBrowser behaves like a plain networked client that talks to the
	// live server by default.
	HostBrowser = "browser"
	// HostPackaged behaves like the packaged offline-capable build that
	// targets the local fallback server by default.
	HostPackaged = "packaged"
)

// StructuredConfig is the top-level configuration container for the
// inventory client and the local fallback server. It aggregates all
// sub-configurations and is populated by merging built-in defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string, the
	// host mode and the log file location.
	App App `envPrefix:"APP_"`

	// Storage holds configuration of the local SQLite database that keeps
	// snapshots and the outbox.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the local fallback
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds addresses and timeouts used when talking to the live
	// server and to the local fallback server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Connectivity holds settings of the base resolver.
	Connectivity Connectivity `envPrefix:"CONNECTIVITY_"`

	// Workers holds configuration for background synchronization.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Host selects how the host capability is determined: "auto",
	// "browser" or "packaged".
	// Env: APP_HOST
	Host string `env:"HOST"`

	// LogFile is the path of the client log file. The terminal client
	// cannot log to stdout because the UI owns the terminal.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path or URI
	// (e.g. "inventory.db" or "file:inventory.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings of the local fallback server.
type Server struct {
	// HTTPAddress is the TCP address on which the local fallback server
	// listens, in "host:port" format (e.g. "127.0.0.1:27271").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds outbound transport settings.
type Adapter struct {
	// LiveAddress is the base URL of the live REST server
	// (e.g. "https://inventory.example.com"). Empty means the live server
	// is not a meaningful destination for this host.
	// Env: ADAPTER_LIVE_ADDRESS
	LiveAddress string `env:"LIVE_ADDRESS"`

	// LocalAddress is the base URL of the local fallback server.
	// Env: ADAPTER_LOCAL_ADDRESS
	LocalAddress string `env:"LOCAL_ADDRESS"`

	// RequestTimeout bounds every outbound data request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ProbeTimeout bounds reachability probes. It must stay below one
	// second; an expired probe counts as unreachable.
	// Env: ADAPTER_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// LiveProbePath is the path probed on the live server before switching
	// back to it.
	// Env: ADAPTER_LIVE_PROBE_PATH
	LiveProbePath string `env:"LIVE_PROBE_PATH"`

	// PageSize is the page size used when pulling whole categories.
	// Env: ADAPTER_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Connectivity holds base resolver settings.
type Connectivity struct {
	// ForceLocal pins the resolver to the local fallback server.
	// Env: CONNECTIVITY_FORCE_LOCAL
	ForceLocal bool `env:"FORCE_LOCAL"`

	// ForceLocalFile is a flag file watched at runtime; while it exists
	// the resolver is pinned to the local fallback server.
	// Env: CONNECTIVITY_FORCE_LOCAL_FILE
	ForceLocalFile string `env:"FORCE_LOCAL_FILE"`

	// ResolveInterval is how often the target is re-evaluated.
	// Env: CONNECTIVITY_RESOLVE_INTERVAL
	ResolveInterval time.Duration `env:"RESOLVE_INTERVAL"`
}

// Workers holds configuration for background synchronization.
type Workers struct {
	// SyncInterval is the period of the flush and pull job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// FlushDelay postpones the start-up flush so that a local server
	// launched next to the client has time to come up.
	// Env: WORKERS_FLUSH_DELAY
	FlushDelay time.Duration `env:"FLUSH_DELAY"`

	// FlushWarnAttempts is the number of failed replays of a single outbox
	// entry after which every further failure is logged as a warning.
	// Env: WORKERS_FLUSH_WARN_ATTEMPTS
	FlushWarnAttempts int `env:"FLUSH_WARN_ATTEMPTS"`
}

// defaultConfig returns the built-in configuration layer that every other
// source is merged on top of.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "dev",
			Host:    HostAuto,
		},
		Storage: Storage{
			DB: DB{DSN: "inventory.db"},
		},
		Server: Server{
			HTTPAddress:    "127.0.0.1:27271",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			LocalAddress:   "http://127.0.0.1:27271",
			RequestTimeout: 15 * time.Second,
			ProbeTimeout:   600 * time.Millisecond,
			LiveProbePath:  "/health",
			PageSize:       100,
		},
		Connectivity: Connectivity{
			ResolveInterval: 3 * time.Second,
		},
		Workers: Workers{
			SyncInterval:      5 * time.Minute,
			FlushDelay:        time.Second,
			FlushWarnAttempts: 5,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
