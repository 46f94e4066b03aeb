// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the domain and wire types shared by the sync client,
// the delta server and their storage layers.
package models

import "time"

// EntityType names a kind of synchronizable record. It is used as the
// "entityType" field of sync deltas and as part of the sync metadata key.
type EntityType string

const (
	EntityTransaction EntityType = "transaction"
	EntityCategory    EntityType = "category"
)

// SyncAction is the kind of local mutation a sync metadata record describes.
type SyncAction string

const (
	ActionCreate SyncAction = "create"
	ActionUpdate SyncAction = "update"
	ActionDelete SyncAction = "delete"
)

// Entity is implemented by every record that takes part in synchronization.
// Identity is a stable string id, unique per entity type.
type Entity interface {
	EntityID() string
	EntityType() EntityType
	// LastModified returns UpdatedAt when set, CreatedAt otherwise.
	LastModified() time.Time
	// IsDeleted reports whether the record carries a deletion tombstone.
	IsDeleted() bool
}

// Epoch is the watermark of a device that has never synchronized.
var Epoch = time.Unix(0, 0).UTC()

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func laterOf(created time.Time, updated *time.Time) time.Time {
	if updated != nil {
		return *updated
	}
	return created
}
