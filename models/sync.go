// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// SyncMetadata records a local mutation that has not been confirmed by the
// server yet. There is at most one record per (EntityType, EntityID); a newer
// mutation overwrites the previous record.
type SyncMetadata struct {
	EntityType   EntityType `json:"entityType"`
	EntityID     string     `json:"entityId"`
	LastModified time.Time  `json:"lastModified"`
	Checksum     string     `json:"checksum"`
	Action       SyncAction `json:"action"`
	DeviceID     string     `json:"deviceId"`
}

// EntityDelta is the set of changes of one entity type relative to a
// watermark.
type EntityDelta[T any] struct {
	Created []T      `json:"created"`
	Updated []T      `json:"updated"`
	Deleted []string `json:"deleted"`
}

// Len returns the total number of changes carried by the delta.
func (d EntityDelta[T]) Len() int {
	return len(d.Created) + len(d.Updated) + len(d.Deleted)
}

// DeltaSync is the body of GET /sync/delta. ServerTimestamp is the server
// clock at the moment the delta was computed and becomes the client's next
// watermark.
type DeltaSync struct {
	Since           time.Time                `json:"since"`
	Transactions    EntityDelta[Transaction] `json:"transactions"`
	Categories      EntityDelta[Category]    `json:"categories"`
	ServerTimestamp time.Time                `json:"serverTimestamp"`
}

// SyncDelta is one local change uploaded to the server. Data is omitted for
// deletes.
type SyncDelta struct {
	EntityType EntityType      `json:"entityType"`
	Action     SyncAction      `json:"action"`
	Data       json.RawMessage `json:"data,omitempty"`
	EntityID   string          `json:"entityId"`
	Timestamp  time.Time       `json:"timestamp"`
	Checksum   string          `json:"checksum"`
}

// DeltaUploadRequest is the body of POST /sync/delta.
type DeltaUploadRequest struct {
	Deltas    []SyncDelta `json:"deltas"`
	DeviceID  string      `json:"deviceId"`
	Timestamp time.Time   `json:"timestamp"`
}

// ServerEntity is the server-side row behind a synchronized record.
type ServerEntity struct {
	UserID     int64
	EntityType EntityType
	EntityID   string
	Payload    json.RawMessage
	Checksum   string
	DeviceID   string
	CreatedAt  time.Time
	ModifiedAt time.Time
	DeletedAt  *time.Time
}

// SyncState is the persisted per-device sync bookkeeping. A zero
// LastSyncTime means the device has never synchronized.
type SyncState struct {
	LastSyncTime time.Time `json:"lastSyncTime"`
	DeviceID     string    `json:"deviceId"`
}
