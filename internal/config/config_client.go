package config

import (
	"fmt"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version string.
	Version string
	// Host is the configured host mode.
	Host string
	// LogFile is the client log file path.
	LogFile string
}

// App converts the client view back to the shared [App] group.
func (c ClientApp) App() App {
	return App{Version: c.Version, Host: c.Host, LogFile: c.LogFile}
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains live and local server addresses and timeouts.
	Adapter Adapter
	// Storage contains local storage settings.
	Storage Storage
	// Connectivity contains base resolver settings.
	Connectivity Connectivity
	// Workers contains background sync settings.
	Workers Workers
	// LocalServer configures the in-process local fallback server started
	// by packaged hosts.
	LocalServer Server
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			Host:    cfg.App.Host,
			LogFile: cfg.App.LogFile,
		},
		Adapter:      cfg.Adapter,
		Storage:      cfg.Storage,
		Connectivity: cfg.Connectivity,
		Workers:      cfg.Workers,
		LocalServer:  cfg.Server,
	}
}

// Structured converts the client view back to the shared configuration.
func (cfg *ClientConfig) Structured() StructuredConfig {
	return StructuredConfig{
		App:          cfg.App.App(),
		Storage:      cfg.Storage,
		Server:       cfg.LocalServer,
		Adapter:      cfg.Adapter,
		Connectivity: cfg.Connectivity,
		Workers:      cfg.Workers,
	}
}
