package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/client"
	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/connectivity"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/tui"
	"github.com/MKhiriev/go-inventory-keeper/internal/workers"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("inventory-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("inventory-client", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	rt, err := app.NewRuntime(context.Background(), cfg.Structured(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating runtime")
	}

	background := rt.Workers()
	// packaged hosts carry their own local fallback server
	if rt.Host == connectivity.HostPackagedOffline {
		localServer, err := rt.LocalServer()
		if err != nil {
			log.Fatal().Err(err).Msg("error creating local server")
		}
		background.Add(workers.Func(func(ctx context.Context) {
			if err := localServer.Serve(ctx); err != nil {
				log.Warn().Err(err).Msg("in-process local server stopped")
			}
		}))
	}

	ui, err := tui.New(tui.Deps{
		Gateway:   rt.Services.Gateway,
		Sync:      rt.Services.Sync,
		Target:    rt.Resolver,
		Pending:   rt.Services.Outbox,
		BuildInfo: models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	clientApp, err := client.NewApp(ui, background, rt, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = clientApp.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
