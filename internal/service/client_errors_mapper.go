// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fin-sync/internal/adapter"
)

// mapAdapterError tags the adapter's transport error with a service business
// error. The original chain is kept, so errors.As(*retry.NetworkError) still
// works on the result.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)

	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrUnprocessable):
		return fmt.Errorf("%w: %w", ErrRejectedByServer, err)

	case errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}
