// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line runtime of the sync client.
//
// It wires the local store, the delta adapter, the retry executor and the
// sync services into one process and runs a single subcommand: store a
// token, sync once, print status, schedule a full resync or run the
// auto-sync loop until interrupted.
package client
