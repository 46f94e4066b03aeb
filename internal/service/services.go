package service

import (
	"github.com/MKhiriev/go-fin-sync/internal/config"
	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/store"
)

type Services struct {
	AuthService    AuthService
	DeltaService   DeltaService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	delta := NewDeltaValidationService().Wrap(NewDeltaService(storages.DeltaRepository, nil, logger))

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		DeltaService:   delta,
		AppInfoService: appInfo,
	}, nil
}
