package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
)

// Storages groups the delta server repositories.
type Storages struct {
	DeltaRepository DeltaRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// server repositories.
func NewStorages(ctx context.Context, dsn string, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DeltaRepository: NewDeltaRepository(db, log),
		db:              db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
