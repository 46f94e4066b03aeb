package service

import (
	"encoding/json"

	"github.com/MKhiriev/go-fin-sync/models"
)

type deltaKey struct {
	entityType models.EntityType
	entityID   string
}

type stagedDelta struct {
	meta  models.SyncMetadata
	delta models.SyncDelta
}

// syncCycle is the bookkeeping of one sync cycle: the uploads staged so far,
// the metadata to clear once the cycle succeeds and the running totals.
type syncCycle struct {
	deviceID    string
	intelligent bool

	order   []deltaKey
	uploads map[deltaKey]stagedDelta

	// pending is cleared after every batch was accepted.
	pending []models.SyncMetadata
	// confirmed is cleared at the end of a successful cycle.
	confirmed []models.SyncMetadata

	items     int
	conflicts int
	bytes     int64
}

func newSyncCycle(deviceID string, intelligent bool) *syncCycle {
	return &syncCycle{
		deviceID:    deviceID,
		intelligent: intelligent,
		uploads:     make(map[deltaKey]stagedDelta),
	}
}

// stage queues meta for upload, replacing an earlier upload of the same
// record.
func (c *syncCycle) stage(meta models.SyncMetadata, data json.RawMessage) {
	key := deltaKey{entityType: meta.EntityType, entityID: meta.EntityID}
	if _, ok := c.uploads[key]; !ok {
		c.order = append(c.order, key)
	}

	c.uploads[key] = stagedDelta{
		meta: meta,
		delta: models.SyncDelta{
			EntityType: meta.EntityType,
			Action:     meta.Action,
			Data:       data,
			EntityID:   meta.EntityID,
			Timestamp:  meta.LastModified,
			Checksum:   meta.Checksum,
		},
	}
}

// restage replaces the upload of a record whose metadata was re-stamped by
// conflict resolution.
func (c *syncCycle) restage(meta models.SyncMetadata, data json.RawMessage) {
	c.stage(meta, data)
}

// supersede drops the pending upload of a record the server state already
// covers. Its metadata is cleared when the cycle succeeds.
func (c *syncCycle) supersede(entityType models.EntityType, id string) {
	key := deltaKey{entityType: entityType, entityID: id}
	if staged, ok := c.uploads[key]; ok {
		c.confirm(staged.meta)
		delete(c.uploads, key)
	}
}

func (c *syncCycle) confirm(meta models.SyncMetadata) {
	c.confirmed = append(c.confirmed, meta)
}

// staged returns the uploads in staging order.
func (c *syncCycle) staged() []stagedDelta {
	out := make([]stagedDelta, 0, len(c.uploads))
	seen := make(map[deltaKey]struct{}, len(c.uploads))
	for _, key := range c.order {
		if _, dup := seen[key]; dup {
			continue
		}
		if staged, ok := c.uploads[key]; ok {
			seen[key] = struct{}{}
			out = append(out, staged)
		}
	}
	return out
}
