package service

import "errors"

var (
	ErrNoAuthToken    = errors.New("no authentication token available")
	ErrSyncInProgress = errors.New("sync already in progress")
	ErrDeviceOffline  = errors.New("device is offline")

	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrNoUserID                = errors.New("no user ID in request context")
	ErrRejectedByServer        = errors.New("changes rejected by server")
	ErrServerUnavailable       = errors.New("sync server unavailable")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrEmptyEntityID      = errors.New("entity id is empty")
	ErrEntityAlreadyExist = errors.New("entity already exists")
)
