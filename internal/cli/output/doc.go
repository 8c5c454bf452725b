// Package output renders keyval-cli results as a table, JSON or YAML.
//
// Result types implement Tabular to control their table layout; JSON and
// YAML use the struct tags of the same types, so scripts see stable field
// names regardless of format.
package output
