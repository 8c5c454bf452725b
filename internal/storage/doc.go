// Package storage provides the storage engine for keyval.
//
// An Engine owns one memory.Store behind a single mutex. Every lookup,
// insert and snapshot takes that mutex, so all operations on the map are
// linearized and a snapshot always captures a consistent map.
//
// Construction policies:
//
//   - Fresh: start with an empty store
//   - LoadOrFresh: load a snapshot, falling back to an empty store on any error
//   - LoadStrict: load a snapshot and return the error on failure
//
// A PeriodicSnapshotter persists the Engine's store on a fixed interval
// until its context is cancelled.
package storage
