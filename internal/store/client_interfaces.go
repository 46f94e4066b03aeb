package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fin-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// EntityRepository is the local store of one synchronizable record type.
// Writes are upserts keyed by id, so replaying them is harmless.
type EntityRepository[T models.Entity] interface {
	// Get returns the record with id, tombstoned or not, or
	// [ErrEntityNotFound].
	Get(ctx context.Context, id string) (T, error)
	// List returns records ordered by id. Tombstones are included only when
	// withDeleted is set.
	List(ctx context.Context, withDeleted bool) ([]T, error)
	Upsert(ctx context.Context, items ...T) error
	// Delete tombstones the record; the row is kept so the deletion can be
	// synchronized.
	Delete(ctx context.Context, id string, at time.Time) (T, error)
	Count(ctx context.Context) (int, error)
}

// SyncMetadataRepository stores pending local mutations, one per
// (entity type, entity id).
type SyncMetadataRepository interface {
	Save(ctx context.Context, meta ...models.SyncMetadata) error
	// ListSince returns records modified strictly after since, oldest first.
	ListSince(ctx context.Context, since time.Time) ([]models.SyncMetadata, error)
	// Delete removes records whose type, id and LastModified all match, so a
	// record re-stamped in the meantime survives. It returns the number of
	// removed records.
	Delete(ctx context.Context, meta ...models.SyncMetadata) (int, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}

// KeyValueStore persists small JSON documents.
type KeyValueStore interface {
	// GetObject decodes the value under key into dst. It returns
	// [ErrKeyNotFound] when the key is absent.
	GetObject(ctx context.Context, key string, dst any) error
	SetObject(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// SyncConfigStore persists the device's sync bookkeeping.
type SyncConfigStore interface {
	GetSyncConfig(ctx context.Context) (models.SyncState, error)
	UpdateLastSyncTime(ctx context.Context, t time.Time) error
	// GetDeviceID returns the device id, generating and storing one on first
	// use.
	GetDeviceID(ctx context.Context) (string, error)
}
