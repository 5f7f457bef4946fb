// Package timeouts defines the HTTP server timeouts shared by the entry points.
package timeouts

import "time"

// ReadHeader limits how long the server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long the server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 15 * time.Second

// Warmup is the pause a warmed Lambda instance holds before returning so
// that concurrently invoked siblings overlap.
const Warmup = 75 * time.Millisecond
