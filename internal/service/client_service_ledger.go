package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/store"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
	"github.com/MKhiriev/go-fin-sync/internal/validators"
	"github.com/MKhiriev/go-fin-sync/models"
)

type clientLedgerService struct {
	transactions store.EntityRepository[models.Transaction]
	categories   store.EntityRepository[models.Category]
	metadata     store.SyncMetadataRepository
	syncConfig   store.SyncConfigStore

	ids      utils.IDGenerator
	checksum utils.ChecksumFunc
	now      Clock
	log      *logger.Logger
}

// LedgerOption customizes the ledger service.
type LedgerOption func(*clientLedgerService)

// WithLedgerChecksum replaces the checksum stamped into sync metadata. It
// should match the syncer's [WithChecksum].
func WithLedgerChecksum(fn utils.ChecksumFunc) LedgerOption {
	return func(l *clientLedgerService) {
		l.checksum = fn
	}
}

// NewClientLedgerService returns the local mutation path of the client.
func NewClientLedgerService(storages *store.ClientStorages, ids utils.IDGenerator, now Clock, log *logger.Logger, opts ...LedgerOption) ClientLedgerService {
	if now == nil {
		now = time.Now
	}
	l := &clientLedgerService{
		transactions: storages.Transactions,
		categories:   storages.Categories,
		metadata:     storages.SyncMetadata,
		syncConfig:   storages.SyncConfig,
		ids:          ids,
		checksum:     utils.Checksum,
		now:          now,
		log:          log.Component("ledger"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *clientLedgerService) CreateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	now := l.now().UTC()
	if strings.TrimSpace(t.ID) == "" {
		t.ID = l.ids.Generate()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt, t.DeletedAt = nil, nil

	if err := validators.ValidateTransaction(t); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return create(ctx, l, l.transactions, t.Normalize(), now)
}

func (l *clientLedgerService) UpdateTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	if err := validators.ValidateTransaction(t); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return update(ctx, l, l.transactions, t, func(current, next models.Transaction, at time.Time) models.Transaction {
		next.CreatedAt = current.CreatedAt
		next.UpdatedAt = &at
		next.DeletedAt = nil
		return next.Normalize()
	})
}

func (l *clientLedgerService) DeleteTransaction(ctx context.Context, id string) error {
	return remove(ctx, l, l.transactions, id)
}

func (l *clientLedgerService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return l.transactions.List(ctx, false)
}

func (l *clientLedgerService) CreateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	now := l.now().UTC()
	if strings.TrimSpace(c.ID) == "" {
		c.ID = l.ids.Generate()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.Color == "" {
		c.Color = models.DefaultCategoryColor
	}
	if c.Icon == "" {
		c.Icon = models.DefaultCategoryIcon
	}
	c.UpdatedAt, c.DeletedAt = nil, nil

	if err := validators.ValidateCategory(c); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return create(ctx, l, l.categories, c.Normalize(), now)
}

func (l *clientLedgerService) UpdateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	if err := validators.ValidateCategory(c); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return update(ctx, l, l.categories, c, func(current, next models.Category, at time.Time) models.Category {
		next.CreatedAt = current.CreatedAt
		next.IsSystem = current.IsSystem
		next.UpdatedAt = &at
		next.DeletedAt = nil
		return next.Normalize()
	})
}

func (l *clientLedgerService) DeleteCategory(ctx context.Context, id string) error {
	return remove(ctx, l, l.categories, id)
}

func (l *clientLedgerService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return l.categories.List(ctx, false)
}

func create[T syncEntity[T]](ctx context.Context, l *clientLedgerService, repo store.EntityRepository[T], item T, at time.Time) (T, error) {
	var zero T

	existing, err := repo.Get(ctx, item.EntityID())
	switch {
	case err == nil && !existing.IsDeleted():
		return zero, fmt.Errorf("%s %s: %w", item.EntityType(), item.EntityID(), ErrEntityAlreadyExist)
	case err != nil && !errors.Is(err, store.ErrEntityNotFound):
		return zero, err
	}

	if err = repo.Upsert(ctx, item); err != nil {
		return zero, err
	}
	if err = l.stamp(ctx, item, models.ActionCreate, at); err != nil {
		return zero, err
	}

	return item, nil
}

func update[T syncEntity[T]](ctx context.Context, l *clientLedgerService, repo store.EntityRepository[T], item T, merge func(current, next T, at time.Time) T) (T, error) {
	var zero T

	current, err := repo.Get(ctx, item.EntityID())
	if err != nil {
		return zero, err
	}
	if current.IsDeleted() {
		return zero, fmt.Errorf("%s %s: %w", item.EntityType(), item.EntityID(), store.ErrEntityNotFound)
	}

	at := l.now().UTC()
	next := merge(current, item, at)
	if err = repo.Upsert(ctx, next); err != nil {
		return zero, err
	}
	if err = l.stamp(ctx, next, models.ActionUpdate, at); err != nil {
		return zero, err
	}

	return next, nil
}

func remove[T syncEntity[T]](ctx context.Context, l *clientLedgerService, repo store.EntityRepository[T], id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyEntityID
	}

	at := l.now().UTC()
	deleted, err := repo.Delete(ctx, id, at)
	if err != nil {
		return err
	}

	return l.stamp(ctx, deleted, models.ActionDelete, at)
}

// stamp records a local mutation so the next sync cycle uploads it.
func (l *clientLedgerService) stamp(ctx context.Context, item models.Entity, action models.SyncAction, at time.Time) error {
	deviceID, err := l.syncConfig.GetDeviceID(ctx)
	if err != nil {
		return err
	}

	sum, err := l.checksum(item)
	if err != nil {
		return err
	}

	meta := models.SyncMetadata{
		EntityType:   item.EntityType(),
		EntityID:     item.EntityID(),
		LastModified: at,
		Checksum:     sum,
		Action:       action,
		DeviceID:     deviceID,
	}
	if err = l.metadata.Save(ctx, meta); err != nil {
		return fmt.Errorf("error stamping sync metadata: %w", err)
	}

	l.log.Debug().
		Str("entity_type", string(meta.EntityType)).
		Str("entity_id", meta.EntityID).
		Str("action", string(action)).
		Msg("local change recorded")

	return nil
}
