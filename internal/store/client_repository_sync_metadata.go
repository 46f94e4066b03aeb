package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/models"
)

const syncMetadataTable = "sync_metadata"

type syncMetadataRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSyncMetadataRepository(db *DB, log *logger.Logger) SyncMetadataRepository {
	return &syncMetadataRepository{db: db, logger: log}
}

func (r *syncMetadataRepository) Save(ctx context.Context, meta ...models.SyncMetadata) error {
	if len(meta) == 0 {
		return nil
	}

	builder := r.db.builder.
		Insert(syncMetadataTable).
		Columns("entity_type", "entity_id", "last_modified", "checksum", "action", "device_id").
		Suffix("ON CONFLICT(entity_type, entity_id) DO UPDATE SET " +
			"last_modified = excluded.last_modified, " +
			"checksum = excluded.checksum, " +
			"action = excluded.action, " +
			"device_id = excluded.device_id")

	for _, m := range meta {
		builder = builder.Values(string(m.EntityType), m.EntityID, toUnixNano(m.LastModified), m.Checksum, string(m.Action), m.DeviceID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncMetadataRepository.Save").
			Int("count", len(meta)).
			Msg("failed to save sync metadata")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	return nil
}

func (r *syncMetadataRepository) ListSince(ctx context.Context, since time.Time) ([]models.SyncMetadata, error) {
	query, args, err := r.db.builder.
		Select("entity_type", "entity_id", "last_modified", "checksum", "action", "device_id").
		From(syncMetadataTable).
		Where(sq.Gt{"last_modified": toUnixNano(since)}).
		OrderBy("last_modified", "entity_type", "entity_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncMetadataRepository.ListSince").
			Time("since", since).
			Msg("failed to query sync metadata")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []models.SyncMetadata
	for rows.Next() {
		var (
			m            models.SyncMetadata
			entityType   string
			action       string
			lastModified int64
		)
		if err = rows.Scan(&entityType, &m.EntityID, &lastModified, &m.Checksum, &action, &m.DeviceID); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		m.EntityType = models.EntityType(entityType)
		m.Action = models.SyncAction(action)
		m.LastModified = fromUnixNano(lastModified)
		out = append(out, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sync metadata rows: %w", err)
	}

	return out, nil
}

func (r *syncMetadataRepository) Delete(ctx context.Context, meta ...models.SyncMetadata) (int, error) {
	if len(meta) == 0 {
		return 0, nil
	}

	var removed int64
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, m := range meta {
			query, args, err := r.db.builder.
				Delete(syncMetadataTable).
				Where(sq.Eq{
					"entity_type":   string(m.EntityType),
					"entity_id":     m.EntityID,
					"last_modified": toUnixNano(m.LastModified),
				}).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				logger.FromContext(ctx).Err(err).
					Str("func", "syncMetadataRepository.Delete").
					Str("entity_id", m.EntityID).
					Msg("failed to delete sync metadata")
				return r.db.wrapError(ErrExecutingStatement, err)
			}

			n, err := res.RowsAffected()
			if err != nil {
				return r.db.wrapError(ErrExecutingStatement, err)
			}
			removed += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return int(removed), nil
}

func (r *syncMetadataRepository) Clear(ctx context.Context) error {
	query, args, err := r.db.builder.Delete(syncMetadataTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	return nil
}

func (r *syncMetadataRepository) Count(ctx context.Context) (int, error) {
	query, args, err := r.db.builder.Select("COUNT(*)").From(syncMetadataTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, r.db.wrapError(ErrExecutingQuery, err)
	}
	return n, nil
}
