// Package metric provides Prometheus metrics for keyval.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: the Registry, its metrics and the /metrics handler
//   - collector.go: a collector that reads the key count at scrape time
//
// Metrics include:
//
//   - RPC request counts and latency histograms by procedure
//   - Snapshot counts by result, duration and size
//   - Number of keys held in memory
//
// A nil *Registry is valid and records nothing, so components can take
// one as an optional dependency.
package metric
