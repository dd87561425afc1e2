// Package monitoring provides Prometheus metrics for namespace
// operations and the HTTP surface, plus a Gin middleware that records
// per-request counters and latencies.
package monitoring
