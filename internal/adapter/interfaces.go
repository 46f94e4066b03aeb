// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote delta endpoints.
//
// [DeltaAdapter] hides the wire protocol from the sync engine. The HTTP
// implementation sends every request through [retry.Executor], so transport
// failures and retryable statuses are retried with backoff before an error
// reaches the caller. Errors are [*retry.NetworkError] values wrapping one of
// the sentinels of errors.go, so both [errors.Is] and [errors.As] work.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fin-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/delta_adapter_mock.go -package=mock

// DeltaAdapter exchanges deltas with the server. endpoint is the API base
// URL including the /api prefix.
type DeltaAdapter interface {
	// FetchDeltas downloads the changes made on the server after since.
	FetchDeltas(ctx context.Context, endpoint, token string, since time.Time) (models.DeltaSync, error)

	// UploadDeltas sends local changes to the server.
	UploadDeltas(ctx context.Context, endpoint, token string, req models.DeltaUploadRequest) error

	// Ping issues a single HEAD request to the health endpoint and reports
	// the round-trip time. It is never retried.
	Ping(ctx context.Context, endpoint string) (time.Duration, error)

	// SetCompression toggles gzip encoding of upload bodies.
	SetCompression(enabled bool)
}
