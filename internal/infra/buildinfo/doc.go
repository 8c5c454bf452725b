// Package buildinfo reports the version of the running binary.
//
// Version, Commit and BuildTime are injected with ldflags:
//
//	go build -ldflags "-X github.com/yndnr/keyval-go/internal/infra/buildinfo.Version=v1.0.0"
//
// When a value is not injected, Get falls back to what the Go toolchain
// embedded in the binary (module version, VCS revision and time).
package buildinfo
