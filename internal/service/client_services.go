package service

import (
	"github.com/MKhiriev/go-fin-sync/internal/adapter"
	"github.com/MKhiriev/go-fin-sync/internal/config"
	"github.com/MKhiriev/go-fin-sync/internal/conflict"
	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/retry"
	"github.com/MKhiriev/go-fin-sync/internal/store"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
)

type ClientServices struct {
	AuthService   ClientAuthService
	LedgerService ClientLedgerService
	Syncer        ClientIncrementalSyncer
	Resolver      *conflict.Resolver
	Orchestrator  *SyncOrchestrator
}

// NewClientServices wires the client sync engine. executor must be the one
// the adapter sends its requests through, so breaker state is shared.
func NewClientServices(localStore *store.ClientStorages, deltaAdapter adapter.DeltaAdapter, executor *retry.Executor, cfg config.ClientSync, log *logger.Logger) *ClientServices {
	resolver := conflict.NewResolver(log)
	authSvc := NewClientAuthService(localStore.KeyValue)
	checksum := ChecksumFor(cfg.Checksum)

	syncer := NewIncrementalSyncer(SyncerDeps{
		Transactions: localStore.Transactions,
		Categories:   localStore.Categories,
		Metadata:     localStore.SyncMetadata,
		SyncConfig:   localStore.SyncConfig,
		Adapter:      deltaAdapter,
		Resolver:     resolver,
		Executor:     executor,
	}, cfg, log, WithChecksum(checksum))

	orchestrator := NewSyncOrchestrator(OrchestratorDeps{
		Syncer:   syncer,
		Auth:     authSvc,
		Pinger:   deltaAdapter,
		Executor: executor,
		KeyValue: localStore.KeyValue,
		Pending:  localStore.SyncMetadata,
	}, cfg, log)

	return &ClientServices{
		AuthService:   authSvc,
		LedgerService: NewClientLedgerService(localStore, utils.NewUUIDGenerator(), nil, log, WithLedgerChecksum(checksum)),
		Syncer:        syncer,
		Resolver:      resolver,
		Orchestrator:  orchestrator,
	}
}

// ChecksumFor maps a [config.ClientSync] checksum name to its function.
// Unknown names fall back to the default checksum.
func ChecksumFor(name string) utils.ChecksumFunc {
	if name == config.ChecksumBlake2b {
		return utils.Blake2bChecksum
	}
	return utils.Checksum
}
