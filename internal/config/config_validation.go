// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate rejects negative durations in the merged configuration. Required
// fields are checked per binary by the view validators.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 || cfg.Server.RequestTimeout < 0 ||
		cfg.Adapter.RequestTimeout < 0 || cfg.Sync.Interval < 0 || cfg.Sync.RetryDelay < 0 {
		return ErrNegativeDuration
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || cfg.Storage.DataDir == "" {
		return ErrInvalidStorageConfigs
	}

	if err := validateAPIURL(cfg.Adapter.APIURL); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	return cfg.Sync.Validate()
}

// Validate checks the sync engine settings.
func (s ClientSync) Validate() error {
	if s.SyncInterval <= 0 || s.RetryDelay < 0 || s.MaxRetries < 0 || s.BatchSize <= 0 {
		return ErrInvalidSyncConfigs
	}

	switch s.Checksum {
	case "", ChecksumDefault, ChecksumBlake2b:
	default:
		return fmt.Errorf("%w: unknown checksum %q", ErrInvalidSyncConfigs, s.Checksum)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	var addr NetAddress
	if err := addr.Set(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	return nil
}

func validateAPIURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api url %q must be an absolute http(s) url", raw)
	}

	return nil
}
