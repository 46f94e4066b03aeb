// Package config loads, merges and validates the configuration of the sync
// client and the delta server.
//
// Configuration is assembled from multiple sources in the following order of
// precedence (a field set by an earlier source is kept):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetClientConfig] and [GetServerConfig]; both return
// a view with defaults applied.
package config
