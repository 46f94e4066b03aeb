// Package http implements the HTTP transport of the delta server.
//
// Routes:
//
//	HEAD|GET /api/health      reachability check
//	GET      /api/version     server version
//	GET      /api/sync/delta  changes since ?since=<RFC 3339> (auth)
//	POST     /api/sync/delta  upload a batch of deltas (auth, gzip, HMAC)
package http
