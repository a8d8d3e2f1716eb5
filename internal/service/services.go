package service

import (
	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/internal/store"
	"github.com/MKhiriev/fretboard-keeper/models"
)

type Services struct {
	AuthService      AuthService
	DirectoryService DirectoryService
	StateService     StateService
	SyncService      SyncService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo.BuildVersion(), logger)
	if err != nil {
		return nil, err
	}

	directoryService := NewDirectoryValidationService(cfg.Limits).
		Wrap(NewDirectoryService(storages.DirectoryRepository))
	stateService := NewStateValidationService(cfg.Limits).
		Wrap(NewStateService(storages.StateRepository))

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, logger),
		DirectoryService: directoryService,
		StateService:     stateService,
		SyncService:      NewSyncService(storages.SyncRepository, cfg.Limits, logger),
		AppInfoService:   appInfoService,
	}, nil
}
