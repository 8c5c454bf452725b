// Package command provides CLI command definitions for keyval-cli.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: application, global flags, output helpers
//   - value.go: get and insert against a running server
//   - snapshot.go: on-demand remote snapshot and local snapshot inspection
//
// Commands parse their arguments, call the server (or read a snapshot
// file), and hand a result type to the selected output formatter.
package command
