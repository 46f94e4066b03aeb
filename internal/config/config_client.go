package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Client defaults.
const (
	DefaultSyncInterval          = 15 * time.Minute
	DefaultMaxRetries            = 3
	DefaultRetryDelay            = time.Second
	DefaultBatchSize             = 50
	DefaultAdapterRequestTimeout = 30 * time.Second

	defaultDataDirName = ".fin-sync"
	defaultDBFileName  = "fin-sync.db"
)

// Change-detection checksum algorithms accepted by [ClientSync.Checksum].
const (
	ChecksumDefault = "default"
	ChecksumBlake2b = "blake2b"
)

// ClientSync is the sync engine configuration consumed by the orchestrator
// and the incremental syncer.
type ClientSync struct {
	// APIURL is the remote API base including the /api prefix.
	APIURL string
	// SyncInterval is the auto-sync period.
	SyncInterval time.Duration
	// AutoSync enables periodic and on-reconnect syncing.
	AutoSync bool
	// IntelligentConflictResolution enables the rule engine. When false
	// every conflict resolves to the remote copy.
	IntelligentConflictResolution bool
	// IncrementalSync selects delta sync; false falls back to full sync.
	IncrementalSync bool
	// MaxRetries is the retry budget of one sync cycle.
	MaxRetries int
	// RetryDelay is the initial backoff delay of one sync cycle.
	RetryDelay time.Duration
	// CompressionEnabled gzips upload bodies.
	CompressionEnabled bool
	// BatchSize is the maximum number of deltas per upload request.
	BatchSize int
	// Checksum names the change-detection checksum: [ChecksumDefault] or
	// [ChecksumBlake2b].
	Checksum string
}

// DefaultClientSync returns the documented defaults with an empty APIURL.
func DefaultClientSync() ClientSync {
	return ClientSync{
		SyncInterval:                  DefaultSyncInterval,
		AutoSync:                      true,
		IntelligentConflictResolution: true,
		IncrementalSync:               true,
		MaxRetries:                    DefaultMaxRetries,
		RetryDelay:                    DefaultRetryDelay,
		CompressionEnabled:            true,
		BatchSize:                     DefaultBatchSize,
		Checksum:                      ChecksumDefault,
	}
}

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey signs upload bodies; empty disables signing.
	HashKey  string
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// APIURL is the remote API base including the /api prefix.
	APIURL string
	// RequestTimeout is the timeout of a single outbound request.
	RequestTimeout time.Duration
}

// ClientStorage holds the local SQLite location.
type ClientStorage struct {
	// DataDir holds the database file and the client log.
	DataDir string
	// DSN is the SQLite DSN; defaults to DataDir/fin-sync.db.
	DSN string
}

// ClientConfig is the client view of [StructuredConfig] with defaults
// applied.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync

	// Args are the positional arguments left after flag parsing: the
	// subcommand and its operands.
	Args []string
}

// GetClientConfig loads the merged configuration from the environment, args
// and the optional JSON file, applies client defaults and validates the
// result.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg onto a [ClientConfig], filling unset values with
// defaults. It does not validate.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	dataDir := cfg.Storage.DataDir
	if dataDir == "" {
		dataDir = defaultDataDir()
	}

	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = filepath.Join(dataDir, defaultDBFileName)
	}

	timeout := cfg.Adapter.RequestTimeout
	if timeout == 0 {
		timeout = DefaultAdapterRequestTimeout
	}

	return &ClientConfig{
		App: ClientApp{
			HashKey:  cfg.App.HashKey,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			APIURL:         cfg.Adapter.APIURL,
			RequestTimeout: timeout,
		},
		Storage: ClientStorage{
			DataDir: dataDir,
			DSN:     dsn,
		},
		Sync: cfg.Sync.toClientSync(cfg.Adapter.APIURL),
		Args: cfg.Args,
	}
}

func (s Sync) toClientSync(apiURL string) ClientSync {
	out := DefaultClientSync()
	out.APIURL = apiURL

	if s.Interval != 0 {
		out.SyncInterval = s.Interval
	}
	if s.AutoSync != nil {
		out.AutoSync = *s.AutoSync
	}
	if s.IncrementalSync != nil {
		out.IncrementalSync = *s.IncrementalSync
	}
	if s.IntelligentConflictResolution != nil {
		out.IntelligentConflictResolution = *s.IntelligentConflictResolution
	}
	if s.CompressionEnabled != nil {
		out.CompressionEnabled = *s.CompressionEnabled
	}
	if s.MaxRetries != nil {
		out.MaxRetries = *s.MaxRetries
	}
	if s.RetryDelay != 0 {
		out.RetryDelay = s.RetryDelay
	}
	if s.BatchSize != 0 {
		out.BatchSize = s.BatchSize
	}
	if s.Checksum != "" {
		out.Checksum = s.Checksum
	}

	return out
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultDataDirName
	}
	return filepath.Join(home, defaultDataDirName)
}
