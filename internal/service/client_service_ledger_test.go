package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/store"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
	"github.com/MKhiriev/go-fin-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs struct{ id string }

func (f fixedIDs) Generate() string { return f.id }

func newTestLedger(t *testing.T, ids utils.IDGenerator) (ClientLedgerService, *store.ClientStorages, *stepClock) {
	t.Helper()
	storages := newTestStorages(t)
	clock := newStepClock(mustTime("2024-03-01T12:00:00Z"))
	return NewClientLedgerService(storages, ids, clock.Now, logger.Nop()), storages, clock
}

func pendingMeta(t *testing.T, s *store.ClientStorages) []models.SyncMetadata {
	t.Helper()
	metas, err := s.SyncMetadata.ListSince(context.Background(), models.Epoch)
	require.NoError(t, err)
	return metas
}

func TestLedger_CreateTransaction(t *testing.T) {
	ctx := context.Background()
	ledger, storages, _ := newTestLedger(t, fixedIDs{id: "generated-id"})

	created, err := ledger.CreateTransaction(ctx, models.Transaction{
		Type:        models.TransactionExpense,
		Amount:      42,
		Description: "Lunch",
		Date:        "2024-03-01",
		Tags:        []string{},
	})
	require.NoError(t, err)

	assert.Equal(t, "generated-id", created.ID)
	assert.True(t, created.CreatedAt.Equal(mustTime("2024-03-01T12:00:00Z")))
	assert.Nil(t, created.UpdatedAt)
	assert.Nil(t, created.Tags)

	stored, err := storages.Transactions.Get(ctx, "generated-id")
	require.NoError(t, err)
	assert.Equal(t, 42.0, stored.Amount)

	metas := pendingMeta(t, storages)
	require.Len(t, metas, 1)
	assert.Equal(t, models.ActionCreate, metas[0].Action)
	assert.Equal(t, models.EntityTransaction, metas[0].EntityType)
	assert.Equal(t, "generated-id", metas[0].EntityID)
	assert.NotEmpty(t, metas[0].Checksum)

	deviceID, err := storages.SyncConfig.GetDeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, deviceID, metas[0].DeviceID)
}

func TestLedger_CreateTransaction_Errors(t *testing.T) {
	ctx := context.Background()
	ledger, storages, _ := newTestLedger(t, utils.NewUUIDGenerator())

	_, err := ledger.CreateTransaction(ctx, models.Transaction{Type: models.TransactionIncome, Amount: -1, Description: "x", Date: "2024-03-01"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	tx := models.Transaction{ID: "t1", Type: models.TransactionIncome, Amount: 1, Description: "Salary", Date: "2024-03-01"}
	_, err = ledger.CreateTransaction(ctx, tx)
	require.NoError(t, err)

	_, err = ledger.CreateTransaction(ctx, tx)
	assert.ErrorIs(t, err, ErrEntityAlreadyExist)

	// после удаления id можно использовать снова
	require.NoError(t, ledger.DeleteTransaction(ctx, "t1"))
	_, err = ledger.CreateTransaction(ctx, tx)
	assert.NoError(t, err)

	assert.Len(t, pendingMeta(t, storages), 1)
}

func TestLedger_UpdateTransaction(t *testing.T) {
	ctx := context.Background()
	ledger, storages, _ := newTestLedger(t, utils.NewUUIDGenerator())

	created, err := ledger.CreateTransaction(ctx, models.Transaction{ID: "t1", Type: models.TransactionExpense, Amount: 10, Description: "Taxi", Date: "2024-03-01"})
	require.NoError(t, err)

	edit := created
	edit.Amount = 11
	edit.CreatedAt = time.Time{}
	updated, err := ledger.UpdateTransaction(ctx, edit)
	require.NoError(t, err)

	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	require.NotNil(t, updated.UpdatedAt)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt))

	metas := pendingMeta(t, storages)
	require.Len(t, metas, 1)
	assert.Equal(t, models.ActionUpdate, metas[0].Action)
	assert.True(t, metas[0].LastModified.Equal(*updated.UpdatedAt))

	_, err = ledger.UpdateTransaction(ctx, models.Transaction{ID: "missing", Type: models.TransactionExpense, Amount: 1, Description: "x", Date: "2024-03-01"})
	assert.ErrorIs(t, err, store.ErrEntityNotFound)

	require.NoError(t, ledger.DeleteTransaction(ctx, "t1"))
	_, err = ledger.UpdateTransaction(ctx, edit)
	assert.ErrorIs(t, err, store.ErrEntityNotFound)
}

func TestLedger_DeleteTransaction(t *testing.T) {
	ctx := context.Background()
	ledger, storages, _ := newTestLedger(t, utils.NewUUIDGenerator())

	assert.ErrorIs(t, ledger.DeleteTransaction(ctx, " "), ErrEmptyEntityID)
	assert.ErrorIs(t, ledger.DeleteTransaction(ctx, "missing"), store.ErrEntityNotFound)

	_, err := ledger.CreateTransaction(ctx, models.Transaction{ID: "t1", Type: models.TransactionExpense, Amount: 3, Description: "Bus", Date: "2024-03-01"})
	require.NoError(t, err)
	require.NoError(t, ledger.DeleteTransaction(ctx, "t1"))

	list, err := ledger.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	tomb, err := storages.Transactions.Get(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, tomb.IsDeleted())

	metas := pendingMeta(t, storages)
	require.Len(t, metas, 1)
	assert.Equal(t, models.ActionDelete, metas[0].Action)
}

func TestLedger_Categories(t *testing.T) {
	ctx := context.Background()
	ledger, storages, _ := newTestLedger(t, fixedIDs{id: "cat-1"})

	_, err := ledger.CreateCategory(ctx, models.Category{Name: "", Type: models.CategoryExpense})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	created, err := ledger.CreateCategory(ctx, models.Category{Name: "Travel", Type: models.CategoryBoth, IsCustom: true})
	require.NoError(t, err)
	assert.Equal(t, "cat-1", created.ID)
	assert.Equal(t, models.DefaultCategoryColor, created.Color)
	assert.Equal(t, models.DefaultCategoryIcon, created.Icon)

	// системный флаг не меняется через обновление
	require.NoError(t, storages.Categories.Upsert(ctx, models.Category{ID: "sys", Name: "Other", Type: models.CategoryBoth, IsSystem: true, CreatedAt: mustTime("2024-01-01T00:00:00Z")}))
	updated, err := ledger.UpdateCategory(ctx, models.Category{ID: "sys", Name: "Misc", Type: models.CategoryBoth})
	require.NoError(t, err)
	assert.True(t, updated.IsSystem)
	assert.Equal(t, "Misc", updated.Name)
	assert.True(t, updated.CreatedAt.Equal(mustTime("2024-01-01T00:00:00Z")))

	require.NoError(t, ledger.DeleteCategory(ctx, "cat-1"))

	list, err := ledger.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "sys", list[0].ID)

	assert.Len(t, pendingMeta(t, storages), 2)
}
