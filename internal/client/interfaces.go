// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of the client runtime.
type Client interface {
	// Run executes the subcommand named by args[0] and blocks until it
	// finishes or ctx is cancelled.
	Run(ctx context.Context, args []string) error

	// Close releases the local store and stops background workers.
	Close() error
}
