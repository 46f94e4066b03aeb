package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/mock"
	"github.com/MKhiriev/go-fin-sync/internal/validators"
	"github.com/MKhiriev/go-fin-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var serverNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return serverNow }

func payload(t *testing.T, v any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestDeltaService_GetDeltas(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDeltaRepository(ctrl)
	svc := NewDeltaService(repo, fixedClock, logger.Nop())

	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	before := since.Add(-time.Hour)
	after := since.Add(time.Hour)
	deletedAt := after

	created := remoteTx("t-new", 10, nil)
	updated := remoteTx("t-old", 20, nil)
	category := models.Category{ID: "c1", Name: "Food", Type: models.CategoryExpense}

	repo.EXPECT().ChangedSince(gomock.Any(), int64(7), since).Return([]models.ServerEntity{
		{EntityType: models.EntityTransaction, EntityID: "t-new", Payload: payload(t, created), CreatedAt: after, ModifiedAt: after},
		{EntityType: models.EntityTransaction, EntityID: "t-old", Payload: payload(t, updated), CreatedAt: before, ModifiedAt: after},
		{EntityType: models.EntityTransaction, EntityID: "t-gone", Payload: payload(t, remoteTx("t-gone", 1, nil)), CreatedAt: before, ModifiedAt: after, DeletedAt: &deletedAt},
		{EntityType: models.EntityCategory, EntityID: "c1", Payload: payload(t, category), CreatedAt: before, ModifiedAt: after},
		{EntityType: models.EntityTransaction, EntityID: "t-bad", Payload: json.RawMessage(`{"amount":"oops"`), CreatedAt: after},
		{EntityType: "budget", EntityID: "b1", Payload: json.RawMessage(`{}`), CreatedAt: after},
	}, nil)

	delta, err := svc.GetDeltas(context.Background(), 7, since)
	require.NoError(t, err)

	assert.True(t, delta.ServerTimestamp.Equal(serverNow))
	assert.True(t, delta.Since.Equal(since))

	require.Len(t, delta.Transactions.Created, 1)
	assert.Equal(t, "t-new", delta.Transactions.Created[0].ID)
	require.Len(t, delta.Transactions.Updated, 1)
	assert.Equal(t, "t-old", delta.Transactions.Updated[0].ID)
	assert.Equal(t, []string{"t-gone"}, delta.Transactions.Deleted)

	assert.Empty(t, delta.Categories.Created)
	require.Len(t, delta.Categories.Updated, 1)
	assert.Equal(t, "Food", delta.Categories.Updated[0].Name)
	assert.NotNil(t, delta.Categories.Deleted)
}

func TestDeltaService_GetDeltas_EmptyResultHasEmptyLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDeltaRepository(ctrl)
	svc := NewDeltaService(repo, fixedClock, logger.Nop())

	repo.EXPECT().ChangedSince(gomock.Any(), int64(1), models.Epoch).Return(nil, nil)

	delta, err := svc.GetDeltas(context.Background(), 1, time.Time{})
	require.NoError(t, err)

	// пустые списки должны сериализоваться как [], а не null
	body, err := json.Marshal(delta)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"created":[]`)
	assert.Contains(t, string(body), `"deleted":[]`)
	assert.NotContains(t, string(body), "null")
}

func TestDeltaService_GetDeltas_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDeltaRepository(ctrl)
	svc := NewDeltaService(repo, fixedClock, logger.Nop())

	dbErr := errors.New("connection reset")
	repo.EXPECT().ChangedSince(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := svc.GetDeltas(context.Background(), 1, serverNow)
	assert.ErrorIs(t, err, dbErr)
}

func TestDeltaService_ApplyDeltas(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDeltaRepository(ctrl)
	svc := NewDeltaService(repo, fixedClock, logger.Nop())

	tx1 := remoteTx("t1", 10, nil)
	tx2 := remoteTx("t2", 20, nil)
	deletedAt := serverNow.Add(-time.Minute)
	tomb := remoteTx("t4", 40, nil)
	tomb.DeletedAt = &deletedAt

	req := models.DeltaUploadRequest{
		DeviceID:  "device-1",
		Timestamp: serverNow,
		Deltas: []models.SyncDelta{
			{EntityType: models.EntityTransaction, Action: models.ActionCreate, EntityID: "t1", Data: payload(t, tx1), Checksum: "a"},
			{EntityType: models.EntityTransaction, Action: models.ActionUpdate, EntityID: "t2", Data: payload(t, tx2), Checksum: "b"},
			{EntityType: models.EntityCategory, Action: models.ActionDelete, EntityID: "c1"},
			{EntityType: models.EntityTransaction, Action: models.ActionUpdate, EntityID: "t4", Data: payload(t, tomb), Checksum: "d"},
		},
	}

	gomock.InOrder(
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entities ...models.ServerEntity) error {
			require.Len(t, entities, 2)
			assert.Equal(t, "t1", entities[0].EntityID)
			assert.Equal(t, int64(3), entities[0].UserID)
			assert.Equal(t, "device-1", entities[0].DeviceID)
			assert.Equal(t, "a", entities[0].Checksum)
			assert.True(t, entities[0].ModifiedAt.Equal(serverNow))
			assert.Nil(t, entities[0].DeletedAt)
			assert.Equal(t, "t2", entities[1].EntityID)
			return nil
		}),
		repo.EXPECT().MarkDeleted(gomock.Any(), int64(3), models.EntityCategory, "c1", "device-1", serverNow).Return(nil),
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entities ...models.ServerEntity) error {
			require.Len(t, entities, 1)
			require.NotNil(t, entities[0].DeletedAt)
			assert.True(t, entities[0].DeletedAt.Equal(serverNow))
			return nil
		}),
	)

	require.NoError(t, svc.ApplyDeltas(context.Background(), 3, req))
}

func TestDeltaService_ApplyDeltas_StopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDeltaRepository(ctrl)
	svc := NewDeltaService(repo, fixedClock, logger.Nop())

	dbErr := errors.New("deadlock detected")
	repo.EXPECT().MarkDeleted(gomock.Any(), gomock.Any(), gomock.Any(), "t1", gomock.Any(), gomock.Any()).Return(dbErr)

	err := svc.ApplyDeltas(context.Background(), 3, models.DeltaUploadRequest{
		DeviceID: "device-1",
		Deltas: []models.SyncDelta{
			{EntityType: models.EntityTransaction, Action: models.ActionDelete, EntityID: "t1"},
			{EntityType: models.EntityTransaction, Action: models.ActionDelete, EntityID: "t2"},
		},
	})
	assert.ErrorIs(t, err, dbErr)
}

func TestDeltaValidationService(t *testing.T) {
	validTx := remoteTx("t1", 10, nil)
	invalidTx := remoteTx("t1", 0, nil)

	tests := []struct {
		name      string
		userID    int64
		req       models.DeltaUploadRequest
		wantErr   error
		wantInner bool
	}{
		{
			name:    "no user",
			req:     models.DeltaUploadRequest{DeviceID: "d"},
			wantErr: ErrNoUserID,
		},
		{
			name:    "no device",
			userID:  1,
			req:     models.DeltaUploadRequest{Deltas: []models.SyncDelta{{EntityType: models.EntityTransaction, Action: models.ActionDelete, EntityID: "t1"}}},
			wantErr: validators.ErrEmptyDeviceID,
		},
		{
			name:    "empty batch",
			userID:  1,
			req:     models.DeltaUploadRequest{DeviceID: "d"},
			wantErr: validators.ErrEmptyDeltas,
		},
		{
			name:   "invalid payload",
			userID: 1,
			req: models.DeltaUploadRequest{DeviceID: "d", Deltas: []models.SyncDelta{
				{EntityType: models.EntityTransaction, Action: models.ActionCreate, EntityID: "t1", Data: payload(t, invalidTx)},
			}},
			wantErr: validators.ErrInvalidAmount,
		},
		{
			name:   "id mismatch",
			userID: 1,
			req: models.DeltaUploadRequest{DeviceID: "d", Deltas: []models.SyncDelta{
				{EntityType: models.EntityTransaction, Action: models.ActionCreate, EntityID: "other", Data: payload(t, validTx)},
			}},
			wantErr: validators.ErrEntityIDMismatch,
		},
		{
			name:   "valid",
			userID: 1,
			req: models.DeltaUploadRequest{DeviceID: "d", Deltas: []models.SyncDelta{
				{EntityType: models.EntityTransaction, Action: models.ActionCreate, EntityID: "t1", Data: payload(t, validTx)},
			}},
			wantInner: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockDeltaService(ctrl)
			if tt.wantInner {
				inner.EXPECT().ApplyDeltas(gomock.Any(), tt.userID, tt.req).Return(nil)
			}

			svc := NewDeltaValidationService().Wrap(inner)
			err := svc.ApplyDeltas(context.Background(), tt.userID, tt.req)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if !errors.Is(tt.wantErr, ErrNoUserID) {
				assert.ErrorIs(t, err, ErrInvalidDataProvided)
			}
		})
	}
}

func TestDeltaValidationService_GetDeltas(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockDeltaService(ctrl)
	svc := NewDeltaValidationService().Wrap(inner)

	_, err := svc.GetDeltas(context.Background(), 0, serverNow)
	assert.ErrorIs(t, err, ErrNoUserID)

	inner.EXPECT().GetDeltas(gomock.Any(), int64(5), serverNow).Return(models.DeltaSync{ServerTimestamp: serverNow}, nil)
	delta, err := svc.GetDeltas(context.Background(), 5, serverNow)
	require.NoError(t, err)
	assert.True(t, delta.ServerTimestamp.Equal(serverNow))
}
