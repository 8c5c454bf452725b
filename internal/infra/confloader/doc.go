// Package confloader provides configuration loading mechanism.
//
// This package implements a configuration loader that supports multiple
// sources using koanf as the underlying library, and a file watcher that
// reports changes to the loaded file.
//
// Priority (highest to lowest):
//
//  1. Overrides (command-line flags)
//  2. Environment variables (KEYVAL_ prefix, "__" separates sections)
//  3. Configuration file (YAML)
//  4. Values already present in the target struct
//
// Example: KEYVAL_STORAGE__SNAPSHOT_PATH=/var/lib/keyval/state.bin sets
// storage.snapshot_path.
package confloader
