// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NetworkStatus is the connection quality measured by the health check.
type NetworkStatus string

const (
	NetworkExcellent NetworkStatus = "excellent"
	NetworkGood      NetworkStatus = "good"
	NetworkPoor      NetworkStatus = "poor"
	NetworkOffline   NetworkStatus = "offline"
)

// SyncStatus is the snapshot broadcast to status listeners after every
// change.
type SyncStatus struct {
	IsOnline         bool          `json:"isOnline"`
	IsSyncing        bool          `json:"isSyncing"`
	LastSync         *time.Time    `json:"lastSync,omitempty"`
	LastError        string        `json:"lastError,omitempty"`
	PendingItems     int           `json:"pendingItems"`
	QueuedOperations int           `json:"queuedOperations"`
	NetworkStatus    NetworkStatus `json:"networkStatus"`
}

// Clone returns a copy that shares no memory with s.
func (s SyncStatus) Clone() SyncStatus {
	if s.LastSync != nil {
		t := *s.LastSync
		s.LastSync = &t
	}
	return s
}

// SyncMetrics are cumulative counters persisted across restarts.
// AverageSyncTime is kept in milliseconds.
type SyncMetrics struct {
	LastSyncTime           *time.Time `json:"lastSyncTime,omitempty"`
	TotalSyncs             int        `json:"totalSyncs"`
	SuccessfulSyncs        int        `json:"successfulSyncs"`
	FailedSyncs            int        `json:"failedSyncs"`
	AverageSyncTime        float64    `json:"averageSyncTime"`
	TotalItemsSynced       int        `json:"totalItemsSynced"`
	TotalConflictsResolved int        `json:"totalConflictsResolved"`
	TotalBytesTransferred  int64      `json:"totalBytesTransferred"`
}

// Record folds the outcome of one sync cycle into the counters.
func (m *SyncMetrics) Record(result SyncResult, at time.Time) {
	m.TotalSyncs++
	if result.Success {
		m.SuccessfulSyncs++
	} else {
		m.FailedSyncs++
	}

	elapsed := float64(result.SyncTime) / float64(time.Millisecond)
	m.AverageSyncTime = (m.AverageSyncTime*float64(m.TotalSyncs-1) + elapsed) / float64(m.TotalSyncs)

	m.TotalItemsSynced += result.ItemsSynced
	m.TotalConflictsResolved += result.ConflictsResolved
	m.TotalBytesTransferred += result.BytesTransferred

	t := at
	m.LastSyncTime = &t
}

// SyncResult is the outcome of one sync cycle. Err carries the underlying
// error for programmatic inspection; Error is its message.
type SyncResult struct {
	Success           bool          `json:"success"`
	ItemsSynced       int           `json:"itemsSynced"`
	ConflictsResolved int           `json:"conflictsResolved"`
	BytesTransferred  int64         `json:"bytesTransferred"`
	SyncTime          time.Duration `json:"syncTime"`
	Error             string        `json:"error,omitempty"`
	Err               error         `json:"-"`
}

// FailedSyncResult builds the result of an aborted cycle.
func FailedSyncResult(err error) SyncResult {
	return SyncResult{Success: false, Error: err.Error(), Err: err}
}

// SyncStats summarizes the local sync state.
type SyncStats struct {
	Transactions    int       `json:"transactions"`
	Categories      int       `json:"categories"`
	PendingChanges  int       `json:"pendingChanges"`
	LastSyncTime    time.Time `json:"lastSyncTime"`
	NeverSynced     bool      `json:"neverSynced"`
	DeviceID        string    `json:"deviceId"`
	ActiveBreakers  int       `json:"activeBreakers"`
	TotalRetryFails int       `json:"totalRetryFailures"`
}
