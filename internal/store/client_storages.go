package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-sync/internal/config"
	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
	"github.com/MKhiriev/go-fin-sync/models"
)

// ClientStorages groups the client-side repositories. All of them share one
// SQLite database.
type ClientStorages struct {
	Transactions EntityRepository[models.Transaction]
	Categories   EntityRepository[models.Category]
	SyncMetadata SyncMetadataRepository
	KeyValue     KeyValueStore
	SyncConfig   SyncConfigStore

	db *DB
}

// NewClientStorages opens the SQLite database named by cfg.DSN, applies
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, log), nil
}

func newClientStorages(db *DB, log *logger.Logger) *ClientStorages {
	kv := NewKeyValueStore(db, log)
	return &ClientStorages{
		Transactions: NewTransactionRepository(db, log),
		Categories:   NewCategoryRepository(db, log),
		SyncMetadata: NewSyncMetadataRepository(db, log),
		KeyValue:     kv,
		SyncConfig:   NewSyncConfigStore(kv, utils.NewUUIDGenerator()),
		db:           db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
