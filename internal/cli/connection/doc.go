// Package connection builds RPC clients for keyval-cli.
//
// The server speaks Connect, gRPC and gRPC-Web on one cleartext HTTP/2
// port. Connect calls go over a plain HTTP client; gRPC needs HTTP/2, so
// for it the client dials h2c (HTTP/2 without TLS).
package connection
