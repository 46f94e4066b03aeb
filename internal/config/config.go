// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the union of every setting the sync client and the
// delta server understand. It is populated by merging environment variables,
// command-line flags and an optional JSON file; each binary then takes its
// own view with [GetClientConfig] or [GetServerConfig].
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, integrity and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database DSN and the client data directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the delta server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote delta API location used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the client sync engine tuning knobs.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args are the positional arguments left after flag parsing.
	Args []string
}

// App holds application-level values shared by both binaries.
type App struct {
	// TokenSignKey is the HS256 key used to verify bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of bearer tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens minted by cmd tooling.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key for the HashSHA256 body signature header.
	// Empty disables signing and verification.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by the health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`

	// DataDir is the client directory for the SQLite file and the log file.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// DB holds database connection settings.
type DB struct {
	// DSN is a PostgreSQL URL on the server and a SQLite file DSN on the
	// client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the inbound transport settings of the delta server.
type Server struct {
	// HTTPAddress is the "host:port" the server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the location of the remote delta API.
type Adapter struct {
	// APIURL is the base URL including the /api prefix,
	// e.g. "https://sync.example.com/api".
	// Env: ADAPTER_API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout bounds a single outbound HTTP request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the raw sync engine settings. Boolean and retry fields are
// pointers so that an explicit false or 0 from any source survives merging;
// nil means "use the default" (see [DefaultClientSync]).
type Sync struct {
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
	// Env: SYNC_AUTO
	AutoSync *bool `env:"AUTO"`
	// Env: SYNC_INCREMENTAL
	IncrementalSync *bool `env:"INCREMENTAL"`
	// Env: SYNC_INTELLIGENT_CONFLICT_RESOLUTION
	IntelligentConflictResolution *bool `env:"INTELLIGENT_CONFLICT_RESOLUTION"`
	// Env: SYNC_COMPRESSION
	CompressionEnabled *bool `env:"COMPRESSION"`
	// Env: SYNC_MAX_RETRIES
	MaxRetries *int `env:"MAX_RETRIES"`
	// Env: SYNC_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`
	// Env: SYNC_BATCH_SIZE
	BatchSize int `env:"BATCH_SIZE"`
	// Env: SYNC_CHECKSUM
	Checksum string `env:"CHECKSUM"`
}

// GetStructuredConfig loads and merges the configuration from, in order of
// precedence:
//  1. Environment variables
//  2. Command-line flags in args
//  3. JSON file (path resolved from sources 1 and 2)
//
// A field set by a higher-precedence source is never overwritten by a lower
// one.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
