package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeltaRepo(t *testing.T) (*deltaRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &deltaRepository{
		db:     newPostgresDB(db, l),
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestDeltaRepository_ChangedSince(t *testing.T) {
	repo, mock, db := newTestDeltaRepo(t)
	defer db.Close()

	since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	created := since.Add(time.Hour)
	deleted := since.Add(2 * time.Hour)

	rows := sqlmock.NewRows(syncEntityColumns).
		AddRow(int64(7), "transaction", "t1", []byte(`{"id":"t1"}`), "abc", "dev", created, created, nil).
		AddRow(int64(7), "category", "c1", []byte(`{"id":"c1"}`), "def", "dev", since.Add(-time.Hour), deleted, deleted)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sync_entities WHERE user_id = $1 AND modified_at > $2 ORDER BY modified_at, entity_type, entity_id")).
		WithArgs(int64(7), since).
		WillReturnRows(rows)

	got, err := repo.ChangedSince(context.Background(), 7, since)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, models.EntityTransaction, got[0].EntityType)
	assert.Equal(t, json.RawMessage(`{"id":"t1"}`), got[0].Payload)
	assert.Nil(t, got[0].DeletedAt)

	assert.Equal(t, models.EntityCategory, got[1].EntityType)
	require.NotNil(t, got[1].DeletedAt)
	assert.True(t, got[1].DeletedAt.Equal(deleted))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeltaRepository_ChangedSince_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "retryable serialization failure", err: pgError(pgerrcode.SerializationFailure), wantErr: ErrStorageUnavailable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), wantErr: ErrStorageUnavailable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), wantErr: ErrExecutingQuery},
		{name: "unknown error", err: errors.New("boom"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestDeltaRepo(t)
			defer db.Close()

			mock.ExpectQuery("FROM sync_entities").WillReturnError(tt.err)

			_, err := repo.ChangedSince(context.Background(), 1, time.Now())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeltaRepository_Upsert(t *testing.T) {
	repo, mock, db := newTestDeltaRepo(t)
	defer db.Close()

	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	first := models.ServerEntity{UserID: 1, EntityType: models.EntityTransaction, EntityID: "t1", Payload: json.RawMessage(`{"v":1}`), Checksum: "1", DeviceID: "d", CreatedAt: now, ModifiedAt: now}
	second := first
	second.Payload = json.RawMessage(`{"v":2}`)
	second.Checksum = "2"

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sync_entities (user_id,entity_type,entity_id,payload,checksum,device_id,created_at,modified_at,deleted_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) ON CONFLICT (user_id, entity_type, entity_id) DO UPDATE SET")).
		WithArgs(int64(1), "transaction", "t1", `{"v":2}`, "2", "d", now, now, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Upsert(context.Background(), first, second))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeltaRepository_UpsertEmpty(t *testing.T) {
	repo, mock, db := newTestDeltaRepo(t)
	defer db.Close()

	require.NoError(t, repo.Upsert(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeltaRepository_UpsertUniqueViolation(t *testing.T) {
	repo, mock, db := newTestDeltaRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_entities").WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.Upsert(context.Background(), models.ServerEntity{UserID: 1, EntityType: models.EntityCategory, EntityID: "c"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}

func TestDeltaRepository_MarkDeleted(t *testing.T) {
	repo, mock, db := newTestDeltaRepo(t)
	defer db.Close()

	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE sync_entities SET deleted_at = $1, modified_at = $2, device_id = $3 WHERE deleted_at IS NULL AND entity_id = $4 AND entity_type = $5 AND user_id = $6")).
		WithArgs(at, at, "dev", "t1", "transaction", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.MarkDeleted(context.Background(), 3, models.EntityTransaction, "t1", "dev", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLastPerKey(t *testing.T) {
	a1 := models.ServerEntity{UserID: 1, EntityType: models.EntityTransaction, EntityID: "a", Checksum: "1"}
	b := models.ServerEntity{UserID: 1, EntityType: models.EntityTransaction, EntityID: "b"}
	a2 := a1
	a2.Checksum = "2"
	otherUser := a1
	otherUser.UserID = 2

	got := lastPerKey([]models.ServerEntity{a1, b, a2, otherUser})
	assert.Equal(t, []models.ServerEntity{a2, b, otherUser}, got)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.TooManyConnections)))
	assert.Equal(t, Retryable, c.Classify(sql.ErrConnDone))
	assert.Equal(t, Retryable, c.Classify(driver.ErrBadConn))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.CheckViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("x")))
}
