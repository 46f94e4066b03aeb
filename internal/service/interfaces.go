package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fin-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=DeltaServiceWrapper

// DeltaService serves the delta endpoints of the sync server.
type DeltaService interface {
	// GetDeltas returns the user's changes made strictly after since,
	// split into created, updated and deleted per entity type.
	GetDeltas(ctx context.Context, userID int64, since time.Time) (models.DeltaSync, error)

	// ApplyDeltas stores the uploaded changes of one device.
	ApplyDeltas(ctx context.Context, userID int64, req models.DeltaUploadRequest) error
}

type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DeltaServiceWrapper defines middleware composition for DeltaService.
// Implementations wrap an existing DeltaService to add behavior such as
// logging or validating.
type DeltaServiceWrapper interface {
	Wrap(DeltaService) DeltaService // returns a decorated DeltaService applying additional behavior
}
