// Package domain defines the core domain errors for keyval.
//
// Errors carry a stable code so transport layers can map them without
// string matching:
//
//   - KV-KEY-*: key lookups against the in-memory store
//   - KV-SNAP-*: reading, writing and decoding snapshots
//   - KV-SYS-*: everything else
package domain
