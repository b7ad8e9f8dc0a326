package config

import "fmt"

// ServerConfig is the configuration view of the standalone local fallback
// server. It runs as the background process of a packaged host, so an
// "auto" host mode resolves to "packaged".
type ServerConfig struct {
	App          App
	Storage      Storage
	Server       Server
	Adapter      Adapter
	Connectivity Connectivity
	Workers      Workers
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	app := cfg.App
	if app.Host == "" || app.Host == HostAuto {
		app.Host = HostPackaged
	}

	return &ServerConfig{
		App:          app,
		Storage:      cfg.Storage,
		Server:       cfg.Server,
		Adapter:      cfg.Adapter,
		Connectivity: cfg.Connectivity,
		Workers:      cfg.Workers,
	}
}

// Structured converts the view back to the shared configuration.
func (cfg *ServerConfig) Structured() StructuredConfig {
	return StructuredConfig{
		App:          cfg.App,
		Storage:      cfg.Storage,
		Server:       cfg.Server,
		Adapter:      cfg.Adapter,
		Connectivity: cfg.Connectivity,
		Workers:      cfg.Workers,
	}
}

func (cfg *ServerConfig) validate() error {
	if cfg.Adapter.LocalAddress == "" {
		return fmt.Errorf("%w: no local address", ErrInvalidAdapterConfigs)
	}
	s := cfg.Structured()
	return s.validate()
}
