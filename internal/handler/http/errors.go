// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidSince is returned when the "since" query parameter is not
	// an RFC 3339 timestamp.
	ErrInvalidSince = errors.New("invalid `since` query parameter")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header does
	// not match the upload body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
