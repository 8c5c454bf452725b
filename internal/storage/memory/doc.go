// Package memory provides the in-memory key-value store and its snapshot
// encoding.
//
// A Store is a plain string-to-string map. It does no locking of its own:
// concurrent callers go through storage.Engine, which serializes every
// read, write and snapshot behind one mutex.
//
// Encoding:
//
// Encode produces a protobuf-wire message with a format_version field (1)
// and a map<string,string> entries field (2). Entries are written in
// ascending key order, so equal stores always encode to identical bytes.
// Decode accepts any valid encoding of that message, including entries in
// arbitrary order and unknown fields.
package memory
