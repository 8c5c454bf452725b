// Package snapshot persists an encoded memory.Store to a single file.
//
// A Repository reads and writes whole-file snapshots through an afero.Fs.
// Save writes to a temporary file in the target directory and renames it
// over the target, so readers only ever see a complete previous snapshot or
// a complete new one.
//
// When a cipher is configured the encoded store is sealed with it before it
// is written, and opened again on Load.
package snapshot
