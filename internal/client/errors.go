package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingToken   = errors.New("token argument is required")
	ErrSyncFailed     = errors.New("sync failed")
)
