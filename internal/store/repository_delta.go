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

const syncEntitiesTable = "sync_entities"

var syncEntityColumns = []string{
	"user_id",
	"entity_type",
	"entity_id",
	"payload",
	"checksum",
	"device_id",
	"created_at",
	"modified_at",
	"deleted_at",
}

// deltaRepository is the PostgreSQL-backed implementation of
// [DeltaRepository]. Rows are keyed by (user_id, entity_type, entity_id);
// deletions keep the row and set deleted_at.
type deltaRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewDeltaRepository(db *DB, log *logger.Logger) DeltaRepository {
	log.Debug().Msg("creating delta repository")
	return &deltaRepository{db: db, logger: log}
}

func (r *deltaRepository) ChangedSince(ctx context.Context, userID int64, since time.Time) ([]models.ServerEntity, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(syncEntityColumns...).
		From(syncEntitiesTable).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Gt{"modified_at": since.UTC()}).
		OrderBy("modified_at", "entity_type", "entity_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "deltaRepository.ChangedSince").
			Int64("user_id", userID).
			Str("sqlstate", postgresError(err)).
			Msg("failed to query changed entities")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var out []models.ServerEntity
	for rows.Next() {
		var (
			e          models.ServerEntity
			entityType string
			payload    []byte
			deletedAt  sql.NullTime
		)
		if err = rows.Scan(&e.UserID, &entityType, &e.EntityID, &payload, &e.Checksum, &e.DeviceID, &e.CreatedAt, &e.ModifiedAt, &deletedAt); err != nil {
			log.Err(err).Str("func", "deltaRepository.ChangedSince").Msg("failed to scan entity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		e.EntityType = models.EntityType(entityType)
		e.Payload = payload
		if deletedAt.Valid {
			t := deletedAt.Time.UTC()
			e.DeletedAt = &t
		}
		e.CreatedAt = e.CreatedAt.UTC()
		e.ModifiedAt = e.ModifiedAt.UTC()
		out = append(out, e)
	}

	if err = rows.Err(); err != nil {
		return nil, r.db.wrapError(ErrScanningRow, err)
	}

	return out, nil
}

func (r *deltaRepository) Upsert(ctx context.Context, entities ...models.ServerEntity) error {
	entities = lastPerKey(entities)
	if len(entities) == 0 {
		return nil
	}

	builder := r.db.builder.
		Insert(syncEntitiesTable).
		Columns(syncEntityColumns...).
		Suffix("ON CONFLICT (user_id, entity_type, entity_id) DO UPDATE SET " +
			"payload = EXCLUDED.payload, " +
			"checksum = EXCLUDED.checksum, " +
			"device_id = EXCLUDED.device_id, " +
			"modified_at = EXCLUDED.modified_at, " +
			"deleted_at = EXCLUDED.deleted_at")

	for _, e := range entities {
		builder = builder.Values(
			e.UserID,
			string(e.EntityType),
			e.EntityID,
			string(e.Payload),
			e.Checksum,
			e.DeviceID,
			e.CreatedAt.UTC(),
			e.ModifiedAt.UTC(),
			e.DeletedAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deltaRepository.Upsert").
			Int("count", len(entities)).
			Str("sqlstate", postgresError(err)).
			Msg("failed to upsert entities")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	return nil
}

func (r *deltaRepository) MarkDeleted(ctx context.Context, userID int64, entityType models.EntityType, entityID, deviceID string, at time.Time) error {
	at = at.UTC()

	query, args, err := r.db.builder.
		Update(syncEntitiesTable).
		Set("deleted_at", at).
		Set("modified_at", at).
		Set("device_id", deviceID).
		Where(sq.Eq{
			"user_id":     userID,
			"entity_type": string(entityType),
			"entity_id":   entityID,
			"deleted_at":  nil,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "deltaRepository.MarkDeleted").
			Int64("user_id", userID).
			Str("entity_id", entityID).
			Str("sqlstate", postgresError(err)).
			Msg("failed to mark entity deleted")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	return nil
}

// lastPerKey drops all but the last occurrence of every key, keeping the
// order of first appearance. PostgreSQL rejects an upsert that touches the
// same row twice.
func lastPerKey(entities []models.ServerEntity) []models.ServerEntity {
	type key struct {
		userID     int64
		entityType models.EntityType
		entityID   string
	}

	index := make(map[key]int, len(entities))
	out := make([]models.ServerEntity, 0, len(entities))
	for _, e := range entities {
		k := key{e.UserID, e.EntityType, e.EntityID}
		if i, ok := index[k]; ok {
			out[i] = e
			continue
		}
		index[k] = len(out)
		out = append(out, e)
	}
	return out
}
