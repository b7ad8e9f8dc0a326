package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:27271",
		"-d", "inventory.db",
		"-config", "/etc/inventory.json",
		"-live", "https://inventory.example.com",
		"-local", "http://127.0.0.1:27271",
		"-host", "browser",
		"-log-file", "client.log",
		"-request-timeout", "12s",
		"-probe-timeout", "400ms",
		"-force-local",
		"-force-local-file", "/tmp/offline",
		"-resolve-interval", "2s",
		"-sync-interval", "1m",
	}

	cfg, err := ParseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:27271", cfg.Server.HTTPAddress)
	assert.Equal(t, "inventory.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/inventory.json", cfg.JSONFilePath)
	assert.Equal(t, "https://inventory.example.com", cfg.Adapter.LiveAddress)
	assert.Equal(t, "http://127.0.0.1:27271", cfg.Adapter.LocalAddress)
	assert.Equal(t, HostBrowser, cfg.App.Host)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, 12*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 400*time.Millisecond, cfg.Adapter.ProbeTimeout)
	assert.True(t, cfg.Connectivity.ForceLocal)
	assert.Equal(t, "/tmp/offline", cfg.Connectivity.ForceLocalFile)
	assert.Equal(t, 2*time.Second, cfg.Connectivity.ResolveInterval)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_BadAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "ip and port", in: "127.0.0.1:8080", want: "127.0.0.1:8080"},
		{name: "localhost", in: "localhost:27271", want: "localhost:27271"},
		{name: "missing port", in: "127.0.0.1", wantErr: true},
		{name: "bad port", in: "127.0.0.1:http", wantErr: true},
		{name: "port out of range", in: "127.0.0.1:70000", wantErr: true},
		{name: "hostname", in: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
