// Package server runs the delta server's HTTP transport: startup, signal
// handling and graceful shutdown.
package server
