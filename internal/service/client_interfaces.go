package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fin-sync/internal/config"
	"github.com/MKhiriev/go-fin-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService holds the access token used for every sync request.
// Tokens are issued elsewhere; the client only stores and reads them.
type ClientAuthService interface {
	// AccessToken returns the stored bearer token or ErrNoAuthToken.
	AccessToken(ctx context.Context) (string, error)

	// SetToken replaces the stored token. An empty token clears it.
	SetToken(ctx context.Context, token string) error

	// CurrentUser describes the owner of the stored token from its claims.
	// The signature is not verified on the client.
	CurrentUser(ctx context.Context) (models.User, error)
}

// ClientIncrementalSyncer runs one sync cycle against the delta endpoints.
//
// Neither Perform method returns a Go error: failures are reported through
// SyncResult.Success, Error and Err, and leave the watermark untouched.
type ClientIncrementalSyncer interface {
	// PerformIncrementalSync exchanges the changes made after the stored
	// watermark and advances it to the server timestamp on success.
	PerformIncrementalSync(ctx context.Context, endpoint, token string) models.SyncResult

	// PerformFullSync downloads everything since the epoch and uploads every
	// local record, tombstones included.
	PerformFullSync(ctx context.Context, endpoint, token string) models.SyncResult

	// ClearSyncMetadata drops all pending local mutations.
	ClearSyncMetadata(ctx context.Context) error

	// ResetWatermark moves the watermark back to the epoch so the next cycle
	// downloads everything.
	ResetWatermark(ctx context.Context) error

	SyncStats(ctx context.Context) (models.SyncStats, error)

	// Configure switches conflict resolution mode, compression and batch
	// size for subsequent cycles.
	Configure(cfg config.ClientSync)
}

// ClientLedgerService mutates the local ledger. Every mutation stamps a sync
// metadata record so the next cycle uploads it.
type ClientLedgerService interface {
	CreateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	ListTransactions(ctx context.Context) ([]models.Transaction, error)

	CreateCategory(ctx context.Context, c models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, c models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]models.Category, error)
}

// Clock returns the current time. Tests replace it to pin timestamps.
type Clock func() time.Time
