// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-fin-sync/internal/adapter"
	"github.com/MKhiriev/go-fin-sync/internal/config"
	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/retry"
	"github.com/MKhiriev/go-fin-sync/internal/store"
	"github.com/MKhiriev/go-fin-sync/internal/workers"
	"github.com/MKhiriev/go-fin-sync/models"
)

// BreakerIncrementalSync is the circuit breaker key of whole sync cycles.
const BreakerIncrementalSync = "incremental_sync"

// Network quality thresholds of the health check.
const (
	DefaultMonitorInterval = 30 * time.Second
	excellentRTT           = 500 * time.Millisecond
	goodRTT                = 2000 * time.Millisecond
)

// OrchestratorDeps are the collaborators of a [SyncOrchestrator].
type OrchestratorDeps struct {
	Syncer   ClientIncrementalSyncer
	Auth     ClientAuthService
	Pinger   adapter.DeltaAdapter
	Executor *retry.Executor
	KeyValue store.KeyValueStore
	// Pending counts unsynced local changes for SyncStatus.PendingItems.
	Pending store.SyncMetadataRepository
}

// OrchestratorOption customizes a [SyncOrchestrator].
type OrchestratorOption func(*SyncOrchestrator)

// WithOrchestratorClock replaces time.Now for cycle timing.
func WithOrchestratorClock(now Clock) OrchestratorOption {
	return func(o *SyncOrchestrator) {
		o.now = now
	}
}

// WithMonitorInterval sets the network check period.
func WithMonitorInterval(d time.Duration) OrchestratorOption {
	return func(o *SyncOrchestrator) {
		o.monitorInterval = d
	}
}

// SyncOrchestrator owns the sync status and metrics of the device and
// decides when sync cycles run: on demand, on a timer and on reconnect.
//
// Cycles never overlap: a non-forced Sync fails fast while a cycle runs, a
// forced one waits for it. Cycle failures are reported through the returned
// result and SyncStatus.LastError, never as Go errors.
type SyncOrchestrator struct {
	syncer   ClientIncrementalSyncer
	auth     ClientAuthService
	pinger   adapter.DeltaAdapter
	executor *retry.Executor
	kv       store.KeyValueStore
	pending  store.SyncMetadataRepository
	log      *logger.Logger

	mu             sync.Mutex
	cfg            config.ClientSync
	status         models.SyncStatus
	metrics        models.SyncMetrics
	fullResyncNext bool

	cycleMu sync.Mutex

	queue     *operationQueue
	listeners *statusBroadcaster

	workersMu sync.Mutex
	baseCtx   context.Context
	autoSync  *workers.Handle
	monitor   *workers.Handle
	bg        sync.WaitGroup

	now             Clock
	monitorInterval time.Duration
}

// NewSyncOrchestrator builds an idle orchestrator. Call Initialize to load
// persisted metrics and start the background workers.
func NewSyncOrchestrator(deps OrchestratorDeps, cfg config.ClientSync, log *logger.Logger, opts ...OrchestratorOption) *SyncOrchestrator {
	log = log.Component("orchestrator")

	o := &SyncOrchestrator{
		syncer:   deps.Syncer,
		auth:     deps.Auth,
		pinger:   deps.Pinger,
		executor: deps.Executor,
		kv:       deps.KeyValue,
		pending:  deps.Pending,
		log:      log,
		cfg:      cfg,
		status: models.SyncStatus{
			IsOnline:      true,
			NetworkStatus: models.NetworkGood,
		},
		queue:           newOperationQueue(log),
		listeners:       newStatusBroadcaster(log),
		baseCtx:         context.Background(),
		now:             time.Now,
		monitorInterval: DefaultMonitorInterval,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Initialize loads persisted metrics, starts the network monitor and, when
// enabled, auto-sync. Workers stop when ctx is cancelled or on Close.
func (o *SyncOrchestrator) Initialize(ctx context.Context) error {
	cfg := o.config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	o.loadMetrics(ctx)

	o.workersMu.Lock()
	o.baseCtx = ctx
	o.workersMu.Unlock()

	if cfg.AutoSync && cfg.SyncInterval > 0 {
		o.StartAutoSync()
	}
	o.startMonitor()

	o.refreshPending(ctx)

	o.log.Info().
		Str("api_url", cfg.APIURL).
		Dur("sync_interval", cfg.SyncInterval).
		Bool("auto_sync", cfg.AutoSync).
		Bool("intelligent_conflicts", cfg.IntelligentConflictResolution).
		Bool("incremental_sync", cfg.IncrementalSync).
		Bool("compression", cfg.CompressionEnabled).
		Msg("sync orchestrator initialized")

	return nil
}

// Sync runs one sync cycle. It returns ErrSyncInProgress when a cycle is
// running and force is false, and ErrDeviceOffline when offline. Every other
// failure is reported in the result.
func (o *SyncOrchestrator) Sync(ctx context.Context, force bool) (models.SyncResult, error) {
	if force {
		o.cycleMu.Lock()
	} else if !o.cycleMu.TryLock() {
		return models.SyncResult{}, ErrSyncInProgress
	}
	defer o.cycleMu.Unlock()

	o.mu.Lock()
	if !o.status.IsOnline {
		o.mu.Unlock()
		return models.SyncResult{}, ErrDeviceOffline
	}
	o.status.IsSyncing = true
	o.mu.Unlock()
	o.notify()

	start := o.now()
	result := o.runCycle(ctx)
	result.SyncTime = o.now().Sub(start)

	o.finishCycle(ctx, result)

	if result.Success {
		o.log.Info().
			Int("items_synced", result.ItemsSynced).
			Int("conflicts_resolved", result.ConflictsResolved).
			Int64("bytes_transferred", result.BytesTransferred).
			Dur("sync_time", result.SyncTime).
			Msg("sync completed successfully")
	} else {
		o.log.Error().
			Str("error", result.Error).
			Dur("sync_time", result.SyncTime).
			Msg("sync failed")
	}

	return result, nil
}

func (o *SyncOrchestrator) runCycle(ctx context.Context) models.SyncResult {
	token, err := o.auth.AccessToken(ctx)
	if err != nil {
		return models.FailedSyncResult(err)
	}

	o.mu.Lock()
	cfg := o.cfg
	full := o.fullResyncNext || !cfg.IncrementalSync
	o.mu.Unlock()

	if full {
		result := o.syncer.PerformFullSync(ctx, cfg.APIURL, token)
		if result.Success {
			o.mu.Lock()
			o.fullResyncNext = false
			o.mu.Unlock()
		}
		return result
	}

	var result models.SyncResult
	err = o.executor.ExecuteWithCircuitBreaker(ctx, BreakerIncrementalSync, func(ctx context.Context) error {
		result = o.syncer.PerformIncrementalSync(ctx, cfg.APIURL, token)
		if !result.Success {
			return result.Err
		}
		return nil
	}, retry.WithMaxRetries(cfg.MaxRetries), retry.WithInitialDelay(cfg.RetryDelay))
	if err != nil {
		return models.FailedSyncResult(err)
	}

	return result
}

func (o *SyncOrchestrator) finishCycle(ctx context.Context, result models.SyncResult) {
	now := o.now()

	o.mu.Lock()
	o.metrics.Record(result, now)
	if result.Success {
		o.status.LastSync = &now
		o.status.LastError = ""
	} else {
		o.status.LastError = result.Error
	}
	o.status.IsSyncing = false
	metrics := o.metrics
	o.mu.Unlock()

	o.saveMetrics(ctx, metrics)
	o.refreshPending(ctx)
}

// QueueOperation appends op to the FIFO queue and drains it. If a drain is
// already running, op is picked up by that drain and QueueOperation returns
// immediately.
func (o *SyncOrchestrator) QueueOperation(ctx context.Context, op Operation) {
	n := o.queue.push(op)
	o.setQueued(n)

	if o.queue.drain(ctx) {
		o.setQueued(o.queue.len())
	}
}

// ProcessQueue drains queued operations, if any.
func (o *SyncOrchestrator) ProcessQueue(ctx context.Context) {
	if o.queue.len() == 0 {
		return
	}
	if o.queue.drain(ctx) {
		o.setQueued(o.queue.len())
	}
}

func (o *SyncOrchestrator) setQueued(n int) {
	o.mu.Lock()
	o.status.QueuedOperations = n
	o.mu.Unlock()
	o.notify()
}

// SetOnline records a connectivity change. Going online triggers one
// background sync when auto-sync is enabled.
func (o *SyncOrchestrator) SetOnline(online bool) {
	o.mu.Lock()
	wasOnline := o.status.IsOnline
	o.status.IsOnline = online
	if online {
		o.status.NetworkStatus = models.NetworkGood
	} else {
		o.status.NetworkStatus = models.NetworkOffline
	}
	autoSync := o.cfg.AutoSync
	o.mu.Unlock()
	o.notify()

	if !online || wasOnline || !autoSync {
		return
	}

	o.workersMu.Lock()
	ctx := o.baseCtx
	o.workersMu.Unlock()

	o.bg.Go(func() {
		if _, err := o.Sync(ctx, false); err != nil {
			o.log.Err(err).Msg("auto-sync on reconnect failed")
		}
	})
}

// StartAutoSync (re)starts the periodic sync worker. Ticks are skipped while
// offline, while a cycle runs and while the network is poor.
func (o *SyncOrchestrator) StartAutoSync() {
	interval := o.config().SyncInterval
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	o.workersMu.Lock()
	defer o.workersMu.Unlock()

	_ = o.autoSync.Stop()
	o.autoSync = workers.Start(o.baseCtx, workers.NewTicker("auto_sync", interval, o.autoSyncTick, o.log))

	o.log.Info().Dur("interval", interval).Msg("auto-sync started")
}

// StopAutoSync stops the periodic sync worker if it runs.
func (o *SyncOrchestrator) StopAutoSync() {
	o.workersMu.Lock()
	defer o.workersMu.Unlock()

	if o.autoSync == nil {
		return
	}
	_ = o.autoSync.Stop()
	o.autoSync = nil

	o.log.Info().Msg("auto-sync stopped")
}

func (o *SyncOrchestrator) autoSyncTick(ctx context.Context) {
	status := o.Status()
	if !status.IsOnline || status.IsSyncing || status.NetworkStatus == models.NetworkPoor {
		return
	}

	if _, err := o.Sync(ctx, false); err != nil && !errors.Is(err, ErrSyncInProgress) {
		o.log.Err(err).Msg("auto-sync failed")
	}
}

func (o *SyncOrchestrator) startMonitor() {
	o.workersMu.Lock()
	defer o.workersMu.Unlock()

	_ = o.monitor.Stop()
	o.monitor = workers.Start(o.baseCtx, workers.NewTicker("network_monitor", o.monitorInterval, o.CheckNetwork, o.log))
}

// CheckNetwork measures the round trip of the health endpoint and updates
// SyncStatus.NetworkStatus. It does nothing while offline.
func (o *SyncOrchestrator) CheckNetwork(ctx context.Context) {
	o.mu.Lock()
	online := o.status.IsOnline
	endpoint := o.cfg.APIURL
	o.mu.Unlock()

	if !online {
		return
	}

	quality := models.NetworkPoor
	rtt, err := o.pinger.Ping(ctx, endpoint)
	switch {
	case err != nil:
		o.log.Debug().Err(err).Msg("health check failed")
	case rtt < excellentRTT:
		quality = models.NetworkExcellent
	case rtt < goodRTT:
		quality = models.NetworkGood
	}

	o.mu.Lock()
	if !o.status.IsOnline {
		o.mu.Unlock()
		return
	}
	changed := o.status.NetworkStatus != quality
	o.status.NetworkStatus = quality
	o.mu.Unlock()

	if changed {
		o.log.Debug().Str("network_status", string(quality)).Dur("rtt", rtt).Msg("network quality changed")
		o.notify()
	}
}

// AddStatusListener registers fn for status snapshots and returns its
// unsubscribe function. A panicking listener is logged and kept.
func (o *SyncOrchestrator) AddStatusListener(fn StatusListener) func() {
	return o.listeners.add(fn)
}

// Subscribe returns a channel of status snapshots holding up to buf
// undelivered values; cancel closes it.
func (o *SyncOrchestrator) Subscribe(buf int) (<-chan models.SyncStatus, func()) {
	return o.listeners.subscribe(buf)
}

func (o *SyncOrchestrator) notify() {
	o.listeners.publish(o.Status())
}

func (o *SyncOrchestrator) refreshPending(ctx context.Context) {
	if o.pending != nil {
		n, err := o.pending.Count(ctx)
		if err != nil {
			o.log.Err(err).Msg("failed to count pending changes")
		} else {
			o.mu.Lock()
			o.status.PendingItems = n
			o.mu.Unlock()
		}
	}
	o.notify()
}

// ForceFullResync drops all pending metadata and resets the watermark. The
// next cycle runs as a full sync.
func (o *SyncOrchestrator) ForceFullResync(ctx context.Context) error {
	if err := o.syncer.ClearSyncMetadata(ctx); err != nil {
		return fmt.Errorf("error forcing full resync: %w", err)
	}
	if err := o.syncer.ResetWatermark(ctx); err != nil {
		return fmt.Errorf("error forcing full resync: %w", err)
	}

	o.mu.Lock()
	o.fullResyncNext = true
	o.mu.Unlock()

	o.refreshPending(ctx)
	o.log.Info().Msg("full resync scheduled")
	return nil
}

// Status returns a snapshot of the current status.
func (o *SyncOrchestrator) Status() models.SyncStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status.Clone()
}

// Metrics returns a snapshot of the cumulative metrics.
func (o *SyncOrchestrator) Metrics() models.SyncMetrics {
	o.mu.Lock()
	defer o.mu.Unlock()

	m := o.metrics
	if m.LastSyncTime != nil {
		t := *m.LastSyncTime
		m.LastSyncTime = &t
	}
	return m
}

func (o *SyncOrchestrator) ResetMetrics(ctx context.Context) error {
	o.mu.Lock()
	o.metrics = models.SyncMetrics{}
	o.mu.Unlock()

	if err := o.kv.SetObject(ctx, store.KeySyncMetrics, models.SyncMetrics{}); err != nil {
		return fmt.Errorf("error saving sync metrics: %w", err)
	}

	o.log.Info().Msg("sync metrics reset")
	return nil
}

// UpdateConfig applies fn to a copy of the configuration. A change of
// SyncInterval or AutoSync restarts auto-sync; other fields take effect on
// the next cycle.
func (o *SyncOrchestrator) UpdateConfig(ctx context.Context, fn func(*config.ClientSync)) error {
	o.mu.Lock()
	prev := o.cfg
	next := prev
	fn(&next)
	if err := next.Validate(); err != nil {
		o.mu.Unlock()
		return err
	}
	o.cfg = next
	o.mu.Unlock()

	o.syncer.Configure(next)
	o.executor.UpdateDefaults(retry.WithMaxRetries(next.MaxRetries), retry.WithInitialDelay(next.RetryDelay))

	if prev.SyncInterval != next.SyncInterval || prev.AutoSync != next.AutoSync {
		o.StopAutoSync()
		if next.AutoSync {
			o.StartAutoSync()
		}
	}

	logger.FromContext(ctx).Debug().Msg("sync configuration updated")
	return nil
}

// Config returns the current configuration.
func (o *SyncOrchestrator) Config() config.ClientSync {
	return o.config()
}

func (o *SyncOrchestrator) config() config.ClientSync {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cfg
}

// Close stops the background workers and waits for a reconnect sync in
// flight.
func (o *SyncOrchestrator) Close() error {
	o.StopAutoSync()

	o.workersMu.Lock()
	err := o.monitor.Stop()
	o.monitor = nil
	o.workersMu.Unlock()

	o.bg.Wait()
	return err
}

func (o *SyncOrchestrator) loadMetrics(ctx context.Context) {
	var stored models.SyncMetrics
	err := o.kv.GetObject(ctx, store.KeySyncMetrics, &stored)
	switch {
	case err == nil:
		o.mu.Lock()
		o.metrics = stored
		o.mu.Unlock()
	case errors.Is(err, store.ErrKeyNotFound):
	default:
		o.log.Err(err).Msg("failed to load sync metrics")
	}
}

func (o *SyncOrchestrator) saveMetrics(ctx context.Context, m models.SyncMetrics) {
	if err := o.kv.SetObject(ctx, store.KeySyncMetrics, m); err != nil {
		o.log.Err(err).Msg("failed to save sync metrics")
	}
}
