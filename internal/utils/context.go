// Package utils holds small helpers shared by the sync client and the delta
// server: context keys, checksums, JWT parsing, HMAC signing, JSON responses,
// id generation and the resty client constructor.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key under which the auth middleware stores the
// authenticated user id (int64).
var UserIDCtxKey = contextKey("userID")

// DeviceIDCtxKey is the context key for the id of the device that sent an
// upload. It is set by the delta handler so that repository logs can carry it.
var DeviceIDCtxKey = contextKey("deviceID")

// GetUserIDFromContext returns the user id stored under [UserIDCtxKey].
// ok is false when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithDeviceID returns a copy of ctx carrying deviceID.
func WithDeviceID(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, DeviceIDCtxKey, deviceID)
}

// GetDeviceIDFromContext returns the device id stored by [WithDeviceID].
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	return deviceID, ok && deviceID != ""
}
