package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/config"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)

	log := logger.NewLogger("inventory-local-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	rt, err := app.NewRuntime(context.Background(), cfg.Structured(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating runtime")
	}
	defer rt.Close()

	srv, err := rt.LocalServer()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, cancel := context.WithCancel(log.WithContext(context.Background()))
	done := make(chan struct{})
	go func() {
		defer close(done)
		rt.Workers().Run(ctx)
	}()

	srv.RunServer()

	cancel()
	<-done
}
