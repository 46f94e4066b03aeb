// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks ledger entities and sync payloads.
//
// The same rules serve two callers: the conflict resolver's data-integrity
// rule, which only needs a yes/no answer ([IsValidTransaction]), and the
// delta server, which rejects malformed uploads with a descriptive error
// through the [Validator] interface.
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
