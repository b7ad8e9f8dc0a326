package client

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/workers"
)

// ErrNoUI is returned by NewApp without a foreground UI.
var ErrNoUI = errors.New("client: no ui")

type App struct {
	ui         UI
	background *workers.Workers
	closer     io.Closer
	logger     *logger.Logger
}

// NewApp assembles the client runtime. background and closer may be nil;
// closer is closed after every worker has stopped.
func NewApp(ui UI, background *workers.Workers, closer io.Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	if background == nil {
		background = workers.NewWorkers()
	}
	return &App{ui: ui, background: background, closer: closer, logger: logger}, nil
}

// Run runs until the UI exits or a termination signal arrives.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	bgCtx, cancel := context.WithCancel(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		a.background.Run(bgCtx)
	}()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)

	cancel()
	<-done

	if a.closer != nil {
		if cerr := a.closer.Close(); cerr != nil {
			a.logger.Err(cerr).Str("func", "App.run").Msg("error closing storages")
			err = errors.Join(err, cerr)
		}
	}
	a.logger.Info().Msg("client stopped")

	return err
}
