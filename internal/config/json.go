package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding, using
// [Duration] so that durations can be written as "600ms" or "5m".
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
		Host    string `json:"host"`
		LogFile string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		LiveAddress    string   `json:"live_address"`
		LocalAddress   string   `json:"local_address"`
		RequestTimeout Duration `json:"request_timeout"`
		ProbeTimeout   Duration `json:"probe_timeout"`
		LiveProbePath  string   `json:"live_probe_path"`
		PageSize       int      `json:"page_size"`
	} `json:"adapter,omitempty"`

	Connectivity struct {
		ForceLocal      bool     `json:"force_local"`
		ForceLocalFile  string   `json:"force_local_file"`
		ResolveInterval Duration `json:"resolve_interval"`
	} `json:"connectivity,omitempty"`

	Workers struct {
		SyncInterval      Duration `json:"sync_interval"`
		FlushDelay        Duration `json:"flush_delay"`
		FlushWarnAttempts int      `json:"flush_warn_attempts"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
			Host:    jsonCfg.App.Host,
			LogFile: jsonCfg.App.LogFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			LiveAddress:    jsonCfg.Adapter.LiveAddress,
			LocalAddress:   jsonCfg.Adapter.LocalAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			ProbeTimeout:   time.Duration(jsonCfg.Adapter.ProbeTimeout),
			LiveProbePath:  jsonCfg.Adapter.LiveProbePath,
			PageSize:       jsonCfg.Adapter.PageSize,
		},
		Connectivity: Connectivity{
			ForceLocal:      jsonCfg.Connectivity.ForceLocal,
			ForceLocalFile:  jsonCfg.Connectivity.ForceLocalFile,
			ResolveInterval: time.Duration(jsonCfg.Connectivity.ResolveInterval),
		},
		Workers: Workers{
			SyncInterval:      time.Duration(jsonCfg.Workers.SyncInterval),
			FlushDelay:        time.Duration(jsonCfg.Workers.FlushDelay),
			FlushWarnAttempts: jsonCfg.Workers.FlushWarnAttempts,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
