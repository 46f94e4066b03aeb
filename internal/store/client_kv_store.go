package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
	"github.com/MKhiriev/go-fin-sync/models"
)

const kvTable = "kv_store"

// Keys used by the sync engine.
const (
	KeyLastSyncTime = "sync.last_sync_time"
	KeyDeviceID     = "sync.device_id"
	KeySyncMetrics  = "sync.metrics"
	KeyAccessToken  = "auth.access_token"
)

type keyValueStore struct {
	db     *DB
	logger *logger.Logger
}

func NewKeyValueStore(db *DB, log *logger.Logger) KeyValueStore {
	return &keyValueStore{db: db, logger: log}
}

func (s *keyValueStore) GetObject(ctx context.Context, key string, dst any) error {
	query, args, err := s.db.builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%q: %w", key, ErrKeyNotFound)
		}
		return s.db.wrapError(ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(value), dst); err != nil {
		return fmt.Errorf("%w: key %q: %w", ErrEncodingPayload, key, err)
	}
	return nil
}

func (s *keyValueStore) SetObject(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key %q: %w", ErrEncodingPayload, key, err)
	}

	query, args, err := s.db.builder.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, string(raw), toUnixNano(time.Now())).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "keyValueStore.SetObject").
			Str("key", key).
			Msg("failed to store value")
		return s.db.wrapError(ErrExecutingStatement, err)
	}
	return nil
}

func (s *keyValueStore) Delete(ctx context.Context, key string) error {
	query, args, err := s.db.builder.Delete(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return s.db.wrapError(ErrExecutingStatement, err)
	}
	return nil
}

// syncConfigStore keeps the sync bookkeeping in the key-value store.
type syncConfigStore struct {
	kv    KeyValueStore
	ids   utils.IDGenerator
	idsMu sync.Mutex
}

func NewSyncConfigStore(kv KeyValueStore, ids utils.IDGenerator) SyncConfigStore {
	return &syncConfigStore{kv: kv, ids: ids}
}

func (s *syncConfigStore) GetSyncConfig(ctx context.Context) (models.SyncState, error) {
	deviceID, err := s.GetDeviceID(ctx)
	if err != nil {
		return models.SyncState{}, err
	}

	state := models.SyncState{LastSyncTime: models.Epoch, DeviceID: deviceID}

	var last time.Time
	switch err = s.kv.GetObject(ctx, KeyLastSyncTime, &last); {
	case err == nil:
		state.LastSyncTime = last.UTC()
	case errors.Is(err, ErrKeyNotFound):
	default:
		return models.SyncState{}, fmt.Errorf("error reading last sync time: %w", err)
	}

	return state, nil
}

func (s *syncConfigStore) UpdateLastSyncTime(ctx context.Context, t time.Time) error {
	if err := s.kv.SetObject(ctx, KeyLastSyncTime, t.UTC()); err != nil {
		return fmt.Errorf("error saving last sync time: %w", err)
	}
	return nil
}

func (s *syncConfigStore) GetDeviceID(ctx context.Context) (string, error) {
	s.idsMu.Lock()
	defer s.idsMu.Unlock()

	var id string
	err := s.kv.GetObject(ctx, KeyDeviceID, &id)
	if err == nil && id != "" {
		return id, nil
	}
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		return "", fmt.Errorf("error reading device id: %w", err)
	}

	id = s.ids.Generate()
	if err = s.kv.SetObject(ctx, KeyDeviceID, id); err != nil {
		return "", fmt.Errorf("error saving device id: %w", err)
	}
	return id, nil
}
