// Package rpcserver serves the keyval RPC API.
//
// The keyval.Value and keyval.admin.v1.Admin services are mounted as
// Connect handlers on a cleartext HTTP/2 (h2c) server, so gRPC, gRPC-Web
// and Connect clients share one port. The same mux exposes /health and
// /metrics.
//
// Unary calls pass through request id assignment and logging first, then
// metrics, panic recovery and the optional token-bucket rate limiter.
package rpcserver
