package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/handler"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/internal/server"
	"github.com/MKhiriev/fretboard-keeper/internal/service"
	"github.com/MKhiriev/fretboard-keeper/internal/store"
	"github.com/MKhiriev/fretboard-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("fretboard-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("limits", cfg.Limits).Any("server", cfg.Server).Msg("received configs")

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := store.NewConnectPostgres(startupCtx, cfg.Storage.DB, log)
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err = db.Migrate(startupCtx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("error applying migrations")
	}
	cancel()

	storages := store.NewStorages(db, cfg.Limits, log)
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	srv, err := newServer(cfg, storages, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

// newServer builds the service, handler and server layers on top of storages.
func newServer(cfg *config.StructuredConfig, storages *store.Storages, buildInfo models.AppBuildInfo, log *logger.Logger) (server.Server, error) {
	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return srv, nil
}
