package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/models"
)

const (
	transactionsTable = "transactions"
	categoriesTable   = "categories"
)

// entityRepository keeps one record type in a table of JSON payloads
// indexed by id, modification time and tombstone flag.
type entityRepository[T models.Entity] struct {
	db        *DB
	table     string
	tombstone func(T, time.Time) T
	logger    *logger.Logger
}

// NewTransactionRepository returns the local transaction store.
func NewTransactionRepository(db *DB, log *logger.Logger) EntityRepository[models.Transaction] {
	return &entityRepository[models.Transaction]{
		db:    db,
		table: transactionsTable,
		tombstone: func(t models.Transaction, at time.Time) models.Transaction {
			t.DeletedAt = &at
			t.UpdatedAt = &at
			return t
		},
		logger: log,
	}
}

// NewCategoryRepository returns the local category store.
func NewCategoryRepository(db *DB, log *logger.Logger) EntityRepository[models.Category] {
	return &entityRepository[models.Category]{
		db:    db,
		table: categoriesTable,
		tombstone: func(c models.Category, at time.Time) models.Category {
			c.DeletedAt = &at
			c.UpdatedAt = &at
			return c
		},
		logger: log,
	}
}

func (r *entityRepository[T]) Get(ctx context.Context, id string) (T, error) {
	return r.get(ctx, r.db, id)
}

func (r *entityRepository[T]) get(ctx context.Context, runner queryRunner, id string) (T, error) {
	var zero T

	query, args, err := r.db.builder.
		Select("payload").
		From(r.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	if err = runner.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, fmt.Errorf("%s %q: %w", r.table, id, ErrEntityNotFound)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "entityRepository.Get").
			Str("table", r.table).
			Str("entity_id", id).
			Msg("failed to query entity")
		return zero, r.db.wrapError(ErrExecutingQuery, err)
	}

	return decodePayload[T](payload)
}

func (r *entityRepository[T]) List(ctx context.Context, withDeleted bool) ([]T, error) {
	builder := r.db.builder.
		Select("payload").
		From(r.table).
		OrderBy("id")
	if !withDeleted {
		builder = builder.Where(sq.Eq{"deleted": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityRepository.List").
			Str("table", r.table).
			Msg("failed to query entities")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		item, err := decodePayload[T](payload)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", r.table, err)
	}

	return items, nil
}

func (r *entityRepository[T]) Upsert(ctx context.Context, items ...T) error {
	if len(items) == 0 {
		return nil
	}
	return r.upsert(ctx, r.db, items...)
}

func (r *entityRepository[T]) upsert(ctx context.Context, runner queryRunner, items ...T) error {
	builder := r.db.builder.
		Insert(r.table).
		Columns("id", "payload", "modified_at", "deleted").
		Suffix("ON CONFLICT(id) DO UPDATE SET " +
			"payload = excluded.payload, " +
			"modified_at = excluded.modified_at, " +
			"deleted = excluded.deleted")

	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
		}
		builder = builder.Values(item.EntityID(), string(payload), toUnixNano(item.LastModified()), item.IsDeleted())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = runner.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityRepository.Upsert").
			Str("table", r.table).
			Int("count", len(items)).
			Msg("failed to upsert entities")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	return nil
}

func (r *entityRepository[T]) Delete(ctx context.Context, id string, at time.Time) (T, error) {
	var deleted T

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		item, err := r.get(ctx, tx, id)
		if err != nil {
			return err
		}

		deleted = r.tombstone(item, at.UTC())
		return r.upsert(ctx, tx, deleted)
	})

	return deleted, err
}

func (r *entityRepository[T]) Count(ctx context.Context) (int, error) {
	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(r.table).
		Where(sq.Eq{"deleted": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, r.db.wrapError(ErrExecutingQuery, err)
	}
	return n, nil
}

func decodePayload[T any](payload string) (T, error) {
	var item T
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		return item, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	return item, nil
}
