package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fin-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DeltaRepository is the server-side store of synchronized records.
type DeltaRepository interface {
	// ChangedSince returns the user's rows modified or deleted strictly
	// after since, ordered by modification time.
	ChangedSince(ctx context.Context, userID int64, since time.Time) ([]models.ServerEntity, error)
	// Upsert inserts or replaces rows keyed by (user, type, id).
	Upsert(ctx context.Context, entities ...models.ServerEntity) error
	// MarkDeleted tombstones the given record. Deleting an unknown record is
	// a no-op.
	MarkDeleted(ctx context.Context, userID int64, entityType models.EntityType, entityID, deviceID string, at time.Time) error
}
