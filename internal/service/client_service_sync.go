// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-fin-sync/internal/adapter"
	"github.com/MKhiriev/go-fin-sync/internal/config"
	"github.com/MKhiriev/go-fin-sync/internal/conflict"
	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/retry"
	"github.com/MKhiriev/go-fin-sync/internal/store"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
	"github.com/MKhiriev/go-fin-sync/models"
)

// deletedItemSize is the byte estimate charged for every deleted id
// received from the server.
const deletedItemSize = 50

// SyncerDeps are the collaborators of the incremental syncer.
type SyncerDeps struct {
	Transactions store.EntityRepository[models.Transaction]
	Categories   store.EntityRepository[models.Category]
	Metadata     store.SyncMetadataRepository
	SyncConfig   store.SyncConfigStore
	Adapter      adapter.DeltaAdapter
	Resolver     *conflict.Resolver
	// Executor is only consulted for breaker statistics; the adapter owns
	// request retries.
	Executor *retry.Executor
}

// SyncerOption customizes the incremental syncer.
type SyncerOption func(*incrementalSyncer)

// WithChecksum replaces the change-detection checksum, e.g. with
// utils.Blake2bChecksum.
func WithChecksum(fn utils.ChecksumFunc) SyncerOption {
	return func(s *incrementalSyncer) {
		s.checksum = fn
	}
}

// WithSyncClock replaces time.Now for metadata stamps and tombstones.
func WithSyncClock(now Clock) SyncerOption {
	return func(s *incrementalSyncer) {
		s.now = now
	}
}

type incrementalSyncer struct {
	deps     SyncerDeps
	checksum utils.ChecksumFunc
	now      Clock
	log      *logger.Logger

	mu          sync.RWMutex
	intelligent bool
	batchSize   int
}

// NewIncrementalSyncer wires the sync protocol to its stores and transport.
func NewIncrementalSyncer(deps SyncerDeps, cfg config.ClientSync, log *logger.Logger, opts ...SyncerOption) ClientIncrementalSyncer {
	s := &incrementalSyncer{
		deps:     deps,
		checksum: utils.Checksum,
		now:      time.Now,
		log:      log.Component("sync"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Configure(cfg)
	return s
}

func (s *incrementalSyncer) Configure(cfg config.ClientSync) {
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = config.DefaultBatchSize
	}

	s.mu.Lock()
	s.intelligent = cfg.IntelligentConflictResolution
	s.batchSize = batch
	s.mu.Unlock()

	s.deps.Adapter.SetCompression(cfg.CompressionEnabled)
}

func (s *incrementalSyncer) settings() (bool, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.intelligent, s.batchSize
}

func (s *incrementalSyncer) PerformIncrementalSync(ctx context.Context, endpoint, token string) models.SyncResult {
	return s.run(ctx, endpoint, token, false)
}

func (s *incrementalSyncer) PerformFullSync(ctx context.Context, endpoint, token string) models.SyncResult {
	return s.run(ctx, endpoint, token, true)
}

func (s *incrementalSyncer) run(ctx context.Context, endpoint, token string, full bool) models.SyncResult {
	start := s.now()

	c, err := s.cycle(ctx, endpoint, token, full)
	if err != nil {
		s.log.Err(err).Bool("full", full).Msg("sync cycle failed")
		result := models.FailedSyncResult(err)
		result.SyncTime = s.now().Sub(start)
		return result
	}

	result := models.SyncResult{
		Success:           true,
		ItemsSynced:       c.items,
		ConflictsResolved: c.conflicts,
		BytesTransferred:  c.bytes,
		SyncTime:          s.now().Sub(start),
	}

	s.log.Info().
		Bool("full", full).
		Int("items_synced", result.ItemsSynced).
		Int("conflicts_resolved", result.ConflictsResolved).
		Int64("bytes_transferred", result.BytesTransferred).
		Dur("sync_time", result.SyncTime).
		Msg("sync cycle completed")

	return result
}

func (s *incrementalSyncer) cycle(ctx context.Context, endpoint, token string, full bool) (*syncCycle, error) {
	state, err := s.deps.SyncConfig.GetSyncConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading sync state: %w", err)
	}

	since := state.LastSyncTime
	if full {
		since = models.Epoch
	}

	intelligent, batchSize := s.settings()
	c := newSyncCycle(state.DeviceID, intelligent)

	s.log.Debug().
		Time("since", since).
		Str("device_id", state.DeviceID).
		Bool("full", full).
		Msg("starting sync cycle")

	deltas, err := s.deps.Adapter.FetchDeltas(ctx, endpoint, token, since)
	if err != nil {
		return nil, fmt.Errorf("error fetching server deltas: %w", mapAdapterError(err))
	}

	s.log.Debug().
		Int("transactions", deltas.Transactions.Len()).
		Int("categories", deltas.Categories.Len()).
		Time("server_timestamp", deltas.ServerTimestamp).
		Msg("received server deltas")

	if full {
		err = s.collectAll(ctx, c)
	} else {
		err = s.collectPending(ctx, c)
	}
	if err != nil {
		return nil, fmt.Errorf("error collecting local deltas: %w", err)
	}

	if err = applyDelta(ctx, s, c, s.deps.Transactions, deltas.Transactions, s.deps.Resolver.ResolveTransaction); err != nil {
		return nil, fmt.Errorf("error applying transaction deltas: %w", err)
	}
	if err = applyDelta(ctx, s, c, s.deps.Categories, deltas.Categories, s.deps.Resolver.ResolveCategory); err != nil {
		return nil, fmt.Errorf("error applying category deltas: %w", err)
	}

	if err = s.upload(ctx, c, endpoint, token, batchSize); err != nil {
		return nil, err
	}

	if len(c.confirmed) > 0 {
		if _, err = s.deps.Metadata.Delete(ctx, c.confirmed...); err != nil {
			return nil, fmt.Errorf("error clearing confirmed sync metadata: %w", err)
		}
	}

	if deltas.ServerTimestamp.IsZero() {
		s.log.Warn().Msg("server response carries no timestamp, watermark not advanced")
		return c, nil
	}

	if err = s.deps.SyncConfig.UpdateLastSyncTime(ctx, deltas.ServerTimestamp); err != nil {
		return nil, fmt.Errorf("error advancing watermark: %w", err)
	}

	return c, nil
}

// collectPending turns every pending metadata record into an upload delta.
// Records are cleared once confirmed, so the whole table is pending work
// whatever the watermark is.
func (s *incrementalSyncer) collectPending(ctx context.Context, c *syncCycle) error {
	metas, err := s.deps.Metadata.ListSince(ctx, models.Epoch)
	if err != nil {
		return err
	}

	for _, meta := range metas {
		var (
			data json.RawMessage
			ok   bool
		)
		switch meta.EntityType {
		case models.EntityTransaction:
			data, ok, err = pendingPayload(ctx, s.deps.Transactions, meta)
		case models.EntityCategory:
			data, ok, err = pendingPayload(ctx, s.deps.Categories, meta)
		default:
			s.log.Warn().Str("entity_type", string(meta.EntityType)).Msg("unknown entity type in sync metadata, dropping")
			c.confirm(meta)
			continue
		}
		if err != nil {
			return err
		}
		if !ok {
			s.log.Warn().
				Str("entity_type", string(meta.EntityType)).
				Str("entity_id", meta.EntityID).
				Msg("pending change refers to a missing record, dropping")
			c.confirm(meta)
			continue
		}

		c.stage(meta, data)
	}

	return nil
}

// collectAll stages every local record, tombstones as deletes, and marks
// every pending metadata record for clearing on upload.
func (s *incrementalSyncer) collectAll(ctx context.Context, c *syncCycle) error {
	metas, err := s.deps.Metadata.ListSince(ctx, models.Epoch)
	if err != nil {
		return err
	}
	c.pending = append(c.pending, metas...)

	if err = stageAll(ctx, s, c, s.deps.Transactions); err != nil {
		return err
	}
	return stageAll(ctx, s, c, s.deps.Categories)
}

// upload sends the staged deltas in batches. Metadata behind a batch is
// cleared as soon as the batch is accepted.
func (s *incrementalSyncer) upload(ctx context.Context, c *syncCycle, endpoint, token string, batchSize int) error {
	staged := c.staged()
	if len(staged) == 0 {
		if len(c.pending) > 0 {
			c.confirmed = append(c.confirmed, c.pending...)
		}
		return nil
	}

	for i := 0; i < len(staged); i += batchSize {
		batch := staged[i:min(i+batchSize, len(staged))]

		req := models.DeltaUploadRequest{
			Deltas:    make([]models.SyncDelta, 0, len(batch)),
			DeviceID:  c.deviceID,
			Timestamp: s.now().UTC(),
		}
		metas := make([]models.SyncMetadata, 0, len(batch))
		for _, p := range batch {
			req.Deltas = append(req.Deltas, p.delta)
			metas = append(metas, p.meta)
		}

		if err := s.deps.Adapter.UploadDeltas(ctx, endpoint, token, req); err != nil {
			return fmt.Errorf("error uploading local deltas: %w", mapAdapterError(err))
		}

		c.items += len(req.Deltas)
		c.bytes += utils.EstimateSize(req)

		if _, err := s.deps.Metadata.Delete(ctx, metas...); err != nil {
			return fmt.Errorf("error clearing uploaded sync metadata: %w", err)
		}

		s.log.Debug().
			Int("count", len(req.Deltas)).
			Int("batch", i/batchSize+1).
			Msg("uploaded local deltas")
	}

	c.confirmed = append(c.confirmed, c.pending...)
	return nil
}

func (s *incrementalSyncer) ClearSyncMetadata(ctx context.Context) error {
	if err := s.deps.Metadata.Clear(ctx); err != nil {
		return fmt.Errorf("error clearing sync metadata: %w", err)
	}
	s.log.Info().Msg("sync metadata cleared")
	return nil
}

func (s *incrementalSyncer) ResetWatermark(ctx context.Context) error {
	if err := s.deps.SyncConfig.UpdateLastSyncTime(ctx, models.Epoch); err != nil {
		return fmt.Errorf("error resetting watermark: %w", err)
	}
	s.log.Info().Msg("watermark reset to epoch")
	return nil
}

func (s *incrementalSyncer) SyncStats(ctx context.Context) (models.SyncStats, error) {
	var (
		stats models.SyncStats
		err   error
	)

	if stats.Transactions, err = s.deps.Transactions.Count(ctx); err != nil {
		return models.SyncStats{}, fmt.Errorf("error counting transactions: %w", err)
	}
	if stats.Categories, err = s.deps.Categories.Count(ctx); err != nil {
		return models.SyncStats{}, fmt.Errorf("error counting categories: %w", err)
	}
	if stats.PendingChanges, err = s.deps.Metadata.Count(ctx); err != nil {
		return models.SyncStats{}, fmt.Errorf("error counting pending changes: %w", err)
	}

	state, err := s.deps.SyncConfig.GetSyncConfig(ctx)
	if err != nil {
		return models.SyncStats{}, fmt.Errorf("error reading sync state: %w", err)
	}
	stats.LastSyncTime = state.LastSyncTime
	stats.NeverSynced = !state.LastSyncTime.After(models.Epoch)
	stats.DeviceID = state.DeviceID

	if s.deps.Executor != nil {
		rs := s.deps.Executor.Stats()
		stats.ActiveBreakers = rs.ActiveCircuitBreakers
		stats.TotalRetryFails = rs.TotalFailures
	}

	return stats, nil
}

// syncEntity is a record the syncer can checksum and store.
type syncEntity[T any] interface {
	models.Entity
	Normalize() T
}

func checksumOf[T syncEntity[T]](fn utils.ChecksumFunc, v T) (string, error) {
	return fn(v.Normalize())
}

// applyDelta applies one entity type's server changes. Every received item
// counts toward the cycle totals whatever its outcome.
func applyDelta[T syncEntity[T]](
	ctx context.Context,
	s *incrementalSyncer,
	c *syncCycle,
	repo store.EntityRepository[T],
	delta models.EntityDelta[T],
	resolve func(conflict.Record[T]) conflict.Resolution[T],
) error {
	if !c.intelligent {
		resolve = conflict.RemoteWins[T]
	}

	remotes := make([]T, 0, len(delta.Created)+len(delta.Updated))
	remotes = append(remotes, delta.Created...)
	remotes = append(remotes, delta.Updated...)

	for _, remote := range remotes {
		remote = remote.Normalize()
		c.items++
		c.bytes += utils.EstimateSize(remote)

		if err := applyRemote(ctx, s, c, repo, remote, resolve); err != nil {
			return fmt.Errorf("entity %s: %w", remote.EntityID(), err)
		}
	}

	var zero T
	entityType := zero.EntityType()
	// Server deletes are not stamped either; they supersede a pending local
	// edit of the same record.
	for _, id := range delta.Deleted {
		c.items++
		c.bytes += deletedItemSize

		local, err := repo.Get(ctx, id)
		switch {
		case errors.Is(err, store.ErrEntityNotFound):
		case err != nil:
			return fmt.Errorf("entity %s: %w", id, err)
		case !local.IsDeleted():
			if _, err = repo.Delete(ctx, id, s.now()); err != nil {
				return fmt.Errorf("entity %s: %w", id, err)
			}
		}
		c.supersede(entityType, id)
	}

	return nil
}

func applyRemote[T syncEntity[T]](
	ctx context.Context,
	s *incrementalSyncer,
	c *syncCycle,
	repo store.EntityRepository[T],
	remote T,
	resolve func(conflict.Record[T]) conflict.Resolution[T],
) error {
	id, entityType := remote.EntityID(), remote.EntityType()

	local, err := repo.Get(ctx, id)
	if errors.Is(err, store.ErrEntityNotFound) {
		// Server records are not stamped: the server already holds them.
		if err = repo.Upsert(ctx, remote); err != nil {
			return err
		}
		c.supersede(entityType, id)
		return nil
	}
	if err != nil {
		return err
	}
	local = local.Normalize()

	localSum, err := checksumOf(s.checksum, local)
	if err != nil {
		return err
	}
	remoteSum, err := checksumOf(s.checksum, remote)
	if err != nil {
		return err
	}
	if localSum == remoteSum {
		c.supersede(entityType, id)
		return nil
	}

	res := resolve(conflict.Record[T]{Local: local, Remote: remote})
	switch res.Kind {
	case conflict.KindRemote:
		c.conflicts++
		if err = repo.Upsert(ctx, res.Data.Normalize()); err != nil {
			return err
		}
		c.supersede(entityType, id)

	case conflict.KindLocal, conflict.KindMerge:
		c.conflicts++
		resolved := res.Data.Normalize()
		if err = repo.Upsert(ctx, resolved); err != nil {
			return err
		}

		sum, err := checksumOf(s.checksum, resolved)
		if err != nil {
			return err
		}
		data, err := json.Marshal(resolved)
		if err != nil {
			return fmt.Errorf("error encoding resolved record: %w", err)
		}

		meta := models.SyncMetadata{
			EntityType:   entityType,
			EntityID:     id,
			LastModified: s.now().UTC(),
			Checksum:     sum,
			Action:       models.ActionUpdate,
			DeviceID:     c.deviceID,
		}
		if err = s.deps.Metadata.Save(ctx, meta); err != nil {
			return err
		}
		c.restage(meta, data)

	default:
		s.log.Warn().
			Str("entity_type", string(entityType)).
			Str("entity_id", id).
			Str("rule", res.Rule).
			Msg("conflict left for manual resolution")
	}

	return nil
}

// pendingPayload loads the current payload behind meta. ok is false when
// the record no longer exists. Deletes carry no payload.
func pendingPayload[T syncEntity[T]](ctx context.Context, repo store.EntityRepository[T], meta models.SyncMetadata) (json.RawMessage, bool, error) {
	item, err := repo.Get(ctx, meta.EntityID)
	if errors.Is(err, store.ErrEntityNotFound) {
		return nil, meta.Action == models.ActionDelete, nil
	}
	if err != nil {
		return nil, false, err
	}

	if meta.Action == models.ActionDelete {
		return nil, true, nil
	}

	data, err := json.Marshal(item.Normalize())
	if err != nil {
		return nil, false, fmt.Errorf("error encoding %s %s: %w", meta.EntityType, meta.EntityID, err)
	}
	return data, true, nil
}

// stageAll stages every record of repo for a full upload. Records without
// pending metadata get a synthetic one that is never persisted.
func stageAll[T syncEntity[T]](ctx context.Context, s *incrementalSyncer, c *syncCycle, repo store.EntityRepository[T]) error {
	items, err := repo.List(ctx, true)
	if err != nil {
		return err
	}

	for _, item := range items {
		item = item.Normalize()

		sum, err := checksumOf(s.checksum, item)
		if err != nil {
			return err
		}

		meta := models.SyncMetadata{
			EntityType:   item.EntityType(),
			EntityID:     item.EntityID(),
			LastModified: item.LastModified().UTC(),
			Checksum:     sum,
			Action:       models.ActionUpdate,
			DeviceID:     c.deviceID,
		}

		var data json.RawMessage
		if item.IsDeleted() {
			meta.Action = models.ActionDelete
		} else if data, err = json.Marshal(item); err != nil {
			return fmt.Errorf("error encoding %s %s: %w", meta.EntityType, meta.EntityID, err)
		}

		c.stage(meta, data)
	}

	return nil
}
