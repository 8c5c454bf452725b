// Package main provides the entry point for keyval-server.
//
// The server holds a string-to-string map in memory and serves it over
// gRPC, gRPC-Web and Connect on one port:
//
//   - keyval.Value/GetValue and keyval.Value/InsertKeyValue
//   - keyval.admin.v1.Admin/Snapshot for on-demand snapshots
//   - /health and /metrics on the same listener
//
// At startup the map is loaded from the snapshot file, or started empty if
// the file is missing or unreadable. A background task rewrites the file on
// a fixed interval.
//
// Usage:
//
//	keyval-server [flags]
//	keyval-server -config /etc/keyval/config.yaml
//	KEYVAL_STORAGE__SNAPSHOT_INTERVAL=1m keyval-server
package main
