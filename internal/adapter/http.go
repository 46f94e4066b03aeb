package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-fin-sync/internal/config"
	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/retry"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
	"github.com/MKhiriev/go-fin-sync/models"
)

const (
	deltaPath  = "/sync/delta"
	healthPath = "/health"
)

type httpDeltaAdapter struct {
	client *utils.HTTPClient
	fetch  retry.FetchFunc
	signer *utils.Signer

	compress atomic.Bool

	logger *logger.Logger
}

// NewHTTPDeltaAdapter builds the HTTP implementation of [DeltaAdapter].
// Requests other than Ping go through executor with opts applied.
func NewHTTPDeltaAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, executor *retry.Executor, log *logger.Logger, opts ...retry.Option) DeltaAdapter {
	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)

	a := &httpDeltaAdapter{
		client: client,
		fetch:  executor.RetryableFetch(client.Client, opts...),
		signer: utils.NewSigner(appCfg.HashKey),
		logger: log.Component("adapter"),
	}
	a.compress.Store(true)
	return a
}

func (h *httpDeltaAdapter) SetCompression(enabled bool) {
	h.compress.Store(enabled)
}

// FetchDeltas implements [DeltaAdapter]. It issues
// GET {endpoint}/sync/delta?since=<RFC 3339> and decodes the [models.DeltaSync]
// body.
func (h *httpDeltaAdapter) FetchDeltas(ctx context.Context, endpoint, token string, since time.Time) (models.DeltaSync, error) {
	target, err := joinEndpoint(endpoint, deltaPath)
	if err != nil {
		return models.DeltaSync{}, err
	}

	resp, err := h.fetch(ctx, http.MethodGet, target, func(r *resty.Request) {
		r.SetAuthToken(token).
			SetQueryParam("since", since.UTC().Format(time.RFC3339Nano))
	})
	if err != nil {
		return models.DeltaSync{}, fmt.Errorf("fetch deltas: %w", mapHTTPError(resp, err))
	}

	var delta models.DeltaSync
	if err = json.Unmarshal(resp.Body(), &delta); err != nil {
		return models.DeltaSync{}, fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}

	h.logger.Debug().
		Time("since", since).
		Int("transactions", delta.Transactions.Len()).
		Int("categories", delta.Categories.Len()).
		Time("server_timestamp", delta.ServerTimestamp).
		Msg("deltas fetched")

	return delta, nil
}

// UploadDeltas implements [DeltaAdapter]. The JSON body is signed with the
// HMAC key (when configured) before optional gzip compression, so the
// server verifies the decompressed payload.
func (h *httpDeltaAdapter) UploadDeltas(ctx context.Context, endpoint, token string, req models.DeltaUploadRequest) error {
	target, err := joinEndpoint(endpoint, deltaPath)
	if err != nil {
		return err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode upload request: %w", err)
	}
	signature := h.signer.Sign(body)

	compressed := h.compress.Load()
	if compressed {
		if body, err = gzipBody(body); err != nil {
			return fmt.Errorf("compress upload request: %w", err)
		}
	}

	resp, err := h.fetch(ctx, http.MethodPost, target, func(r *resty.Request) {
		r.SetAuthToken(token).
			SetHeader("Content-Type", "application/json").
			SetBody(body)
		if compressed {
			r.SetHeader("Content-Encoding", "gzip")
		}
		if signature != "" {
			r.SetHeader(utils.HashHeader, signature)
		}
	})
	if err != nil {
		return fmt.Errorf("upload deltas: %w", mapHTTPError(resp, err))
	}

	h.logger.Debug().
		Int("deltas", len(req.Deltas)).
		Bool("gzip", compressed).
		Msg("deltas uploaded")

	return nil
}

// Ping implements [DeltaAdapter].
func (h *httpDeltaAdapter) Ping(ctx context.Context, endpoint string) (time.Duration, error) {
	target, err := joinEndpoint(endpoint, healthPath)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	resp, err := h.client.R().SetContext(ctx).Head(target)
	elapsed := time.Since(start)
	if err != nil {
		if ne := retry.Classify(err); ne != nil {
			return elapsed, fmt.Errorf("health check: %w", ne)
		}
		return elapsed, fmt.Errorf("health check: %w", err)
	}

	if !resp.IsSuccess() {
		ne := &retry.NetworkError{Status: resp.StatusCode()}
		return elapsed, fmt.Errorf("health check: %w", mapHTTPError(resp, ne))
	}

	return elapsed, nil
}
