// Package main provides the entry point for keyval-cli.
//
// Usage:
//
//	keyval-cli get KEY
//	keyval-cli insert KEY VALUE
//	keyval-cli --server 10.0.0.5:50051 -o json snapshot
//	keyval-cli inspect --entries ./state.bin
package main
