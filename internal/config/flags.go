package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program
// name). Boolean and retry flags are only recorded when present in args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-data-dir client data directory
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-hash-key body signature key
//	-log-level minimum log level
//	-api-url remote API base URL including /api
//	-api-timeout outbound request timeout
//	-sync-interval auto-sync period
//	-auto-sync enable auto-sync
//	-incremental enable incremental sync
//	-intelligent enable rule-based conflict resolution
//	-compression gzip upload bodies
//	-max-retries retry budget per sync cycle
//	-retry-delay initial retry delay
//	-batch-size deltas per upload request
//	-checksum change-detection checksum (default or blake2b)
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("fin-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverAddress  NetAddress
		cfg            StructuredConfig
		autoSync       bool
		incremental    bool
		intelligent    bool
		compression    bool
		maxRetries     int
		jsonConfigPath string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DataDir, "data-dir", "", "Client data directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Body signature key")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Minimum log level")
	fs.StringVar(&cfg.Adapter.APIURL, "api-url", "", "Remote API base URL including /api")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "api-timeout", 0, "Outbound request timeout")
	fs.DurationVar(&cfg.Sync.Interval, "sync-interval", 0, "Auto-sync period")
	fs.BoolVar(&autoSync, "auto-sync", false, "Enable auto-sync")
	fs.BoolVar(&incremental, "incremental", false, "Enable incremental sync")
	fs.BoolVar(&intelligent, "intelligent", false, "Enable rule-based conflict resolution")
	fs.BoolVar(&compression, "compression", false, "Gzip upload bodies")
	fs.IntVar(&maxRetries, "max-retries", 0, "Retry budget per sync cycle")
	fs.DurationVar(&cfg.Sync.RetryDelay, "retry-delay", 0, "Initial retry delay")
	fs.IntVar(&cfg.Sync.BatchSize, "batch-size", 0, "Deltas per upload request")
	fs.StringVar(&cfg.Sync.Checksum, "checksum", "", "Change-detection checksum (default or blake2b)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "auto-sync":
			cfg.Sync.AutoSync = &autoSync
		case "incremental":
			cfg.Sync.IncrementalSync = &incremental
		case "intelligent":
			cfg.Sync.IntelligentConflictResolution = &intelligent
		case "compression":
			cfg.Sync.CompressionEnabled = &compression
		case "max-retries":
			cfg.Sync.MaxRetries = &maxRetries
		}
	})

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.JSONFilePath = jsonConfigPath
	if rest := fs.Args(); len(rest) > 0 {
		cfg.Args = rest
	}

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
