// Package service provides the domain services behind the keyval RPC API.
//
// Services hold the request-level logic and depend on small storage
// interfaces, so they can be tested without a real engine:
//
//   - ValueService: key lookup and upsert
//   - SnapshotService: on-demand snapshots of the whole store
//
// Both are safe for concurrent use; all serialization happens in the
// storage engine they wrap.
package service
