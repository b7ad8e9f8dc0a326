package handler

import (
	"testing"

	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/metrics"
	"github.com/MKhiriev/go-inventory-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		services *service.Services
		cfg      config.Server
		wantErr  bool
	}{
		{"http address", &service.Services{}, config.Server{HTTPAddress: "127.0.0.1:27271"}, false},
		{"no address", &service.Services{}, config.Server{}, true},
		{"no services", nil, config.Server{HTTPAddress: "127.0.0.1:27271"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(tt.services, nil, tt.cfg, metrics.New(), logger.Nop())

			if tt.wantErr {
				require.ErrorIs(t, err, errNoHandlersAreCreated)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, h.HTTP)
		})
	}
}

// TestNewHandlers_IndependentInstances verifies that two calls produce
// independent handlers.
func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:27271"}

	h1, err1 := NewHandlers(&service.Services{}, nil, cfg, nil, logger.Nop())
	h2, err2 := NewHandlers(&service.Services{}, nil, cfg, nil, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
