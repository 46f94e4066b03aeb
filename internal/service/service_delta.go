package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fin-sync/internal/logger"
	"github.com/MKhiriev/go-fin-sync/internal/store"
	"github.com/MKhiriev/go-fin-sync/models"
)

// deltaService is the concrete implementation of DeltaService.
// Every change it stores is stamped with the server clock, so a watermark
// taken from the server clock never skips a change.
type deltaService struct {
	deltaRepository store.DeltaRepository

	now    Clock
	logger *logger.Logger
}

// NewDeltaService constructs a DeltaService on top of repo. A nil now
// defaults to time.Now.
func NewDeltaService(repo store.DeltaRepository, now Clock, logger *logger.Logger) DeltaService {
	if now == nil {
		now = time.Now
	}
	return &deltaService{
		deltaRepository: repo,
		now:             now,
		logger:          logger,
	}
}

// GetDeltas implements DeltaService.
//
// The server timestamp is taken before the query: a change committed while
// the query runs is either in this answer or after the timestamp, so the
// next request returns it again instead of losing it.
func (d *deltaService) GetDeltas(ctx context.Context, userID int64, since time.Time) (models.DeltaSync, error) {
	log := logger.FromContext(ctx)

	if since.IsZero() {
		since = models.Epoch
	}
	since = since.UTC()

	delta := models.DeltaSync{
		Since:           since,
		ServerTimestamp: d.now().UTC(),
		Transactions: models.EntityDelta[models.Transaction]{
			Created: []models.Transaction{},
			Updated: []models.Transaction{},
			Deleted: []string{},
		},
		Categories: models.EntityDelta[models.Category]{
			Created: []models.Category{},
			Updated: []models.Category{},
			Deleted: []string{},
		},
	}

	rows, err := d.deltaRepository.ChangedSince(ctx, userID, since)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Time("since", since).Msg("failed to load changed entities")
		return models.DeltaSync{}, fmt.Errorf("error loading changed entities: %w", err)
	}

	for _, row := range rows {
		var err error
		switch row.EntityType {
		case models.EntityTransaction:
			err = splitRow(&delta.Transactions, row, since)
		case models.EntityCategory:
			err = splitRow(&delta.Categories, row, since)
		default:
			log.Warn().Str("entity_type", string(row.EntityType)).Str("entity_id", row.EntityID).Msg("skipping row of unknown entity type")
			continue
		}
		if err != nil {
			log.Err(err).Str("entity_type", string(row.EntityType)).Str("entity_id", row.EntityID).Msg("skipping row with corrupt payload")
		}
	}

	log.Debug().
		Int64("user_id", userID).
		Time("since", since).
		Int("transactions", delta.Transactions.Len()).
		Int("categories", delta.Categories.Len()).
		Msg("deltas computed")

	return delta, nil
}

// splitRow sorts one changed row into created, updated or deleted.
func splitRow[T any](delta *models.EntityDelta[T], row models.ServerEntity, since time.Time) error {
	if row.DeletedAt != nil {
		delta.Deleted = append(delta.Deleted, row.EntityID)
		return nil
	}

	var item T
	if err := json.Unmarshal(row.Payload, &item); err != nil {
		return err
	}

	if row.CreatedAt.After(since) {
		delta.Created = append(delta.Created, item)
	} else {
		delta.Updated = append(delta.Updated, item)
	}
	return nil
}

// ApplyDeltas implements DeltaService. Deltas are applied in order;
// consecutive upserts are written in one statement.
func (d *deltaService) ApplyDeltas(ctx context.Context, userID int64, req models.DeltaUploadRequest) error {
	log := logger.FromContext(ctx)
	now := d.now().UTC()

	var batch []models.ServerEntity
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := d.deltaRepository.Upsert(ctx, batch...); err != nil {
			return fmt.Errorf("error storing uploaded entities: %w", err)
		}
		batch = batch[:0]
		return nil
	}

	for _, delta := range req.Deltas {
		if delta.Action == models.ActionDelete {
			if err := flush(); err != nil {
				return err
			}
			if err := d.deltaRepository.MarkDeleted(ctx, userID, delta.EntityType, delta.EntityID, req.DeviceID, now); err != nil {
				return fmt.Errorf("error deleting %s %s: %w", delta.EntityType, delta.EntityID, err)
			}
			continue
		}

		entity := models.ServerEntity{
			UserID:     userID,
			EntityType: delta.EntityType,
			EntityID:   delta.EntityID,
			Payload:    delta.Data,
			Checksum:   delta.Checksum,
			DeviceID:   req.DeviceID,
			CreatedAt:  now,
			ModifiedAt: now,
		}
		if tombstoned(delta.Data) {
			entity.DeletedAt = &now
		}
		batch = append(batch, entity)
	}

	if err := flush(); err != nil {
		return err
	}

	log.Info().
		Int64("user_id", userID).
		Str("device_id", req.DeviceID).
		Int("deltas", len(req.Deltas)).
		Msg("deltas applied")

	return nil
}

// tombstoned reports whether an uploaded payload carries a deletedAt marker.
func tombstoned(data json.RawMessage) bool {
	var marker struct {
		DeletedAt *time.Time `json:"deletedAt"`
	}
	return json.Unmarshal(data, &marker) == nil && marker.DeletedAt != nil
}
