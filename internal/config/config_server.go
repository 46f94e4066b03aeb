package config

import (
	"fmt"
	"time"
)

// Server defaults.
const (
	DefaultHTTPAddress          = "localhost:8080"
	DefaultServerRequestTimeout = 30 * time.Second
)

// ServerApp holds server-side application settings.
type ServerApp struct {
	TokenSignKey string
	TokenIssuer  string
	HashKey      string
	LogLevel     string
	Version      string
}

// ServerConfig is the delta server view of [StructuredConfig].
type ServerConfig struct {
	App    ServerApp
	DSN    string
	Server Server
}

// GetServerConfig loads the merged configuration, applies server defaults
// and validates the result.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps cfg onto a [ServerConfig] with defaults applied.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	srv := cfg.Server
	if srv.HTTPAddress == "" {
		srv.HTTPAddress = DefaultHTTPAddress
	}
	if srv.RequestTimeout == 0 {
		srv.RequestTimeout = DefaultServerRequestTimeout
	}

	return &ServerConfig{
		App: ServerApp{
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
			HashKey:      cfg.App.HashKey,
			LogLevel:     cfg.App.LogLevel,
			Version:      cfg.App.Version,
		},
		DSN:    cfg.Storage.DB.DSN,
		Server: srv,
	}
}
