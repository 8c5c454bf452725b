package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/yndnr/keyval-go/internal/storage/snapshot"
	"github.com/yndnr/keyval-go/internal/telemetry/logger"
	"github.com/yndnr/keyval-go/pkg/crypto/adaptive"
)

// Verify validates the configuration and reports every problem found.
func Verify(cfg *ServerConfig) error {
	var result *multierror.Error
	result = multierror.Append(result, verifyServer(&cfg.Server)...)
	result = multierror.Append(result, verifyStorage(&cfg.Storage)...)
	result = multierror.Append(result, verifySecurity(&cfg.Security)...)
	result = multierror.Append(result, verifyLog(&cfg.Log)...)
	return result.ErrorOrNil()
}

func verifyServer(cfg *ServerSection) []error {
	var errs []error
	if _, _, err := net.SplitHostPort(cfg.RPC.Addr); err != nil {
		errs = append(errs, fmt.Errorf("server.rpc.addr %q: %w", cfg.RPC.Addr, err))
	}
	if cfg.RPC.RateLimit < 0 {
		errs = append(errs, errors.New("server.rpc.rate_limit must not be negative"))
	}
	if cfg.RPC.RateBurst < 0 {
		errs = append(errs, errors.New("server.rpc.rate_burst must not be negative"))
	}
	if cfg.RPC.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("server.rpc.shutdown_timeout must not be negative"))
	}
	return errs
}

func verifyStorage(cfg *StorageSection) []error {
	var errs []error
	if strings.TrimSpace(cfg.SnapshotPath) == "" {
		errs = append(errs, errors.New("storage.snapshot_path is required"))
	} else if dir := filepath.Dir(cfg.SnapshotPath); dir != "." {
		fi, err := os.Stat(dir)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("storage.snapshot_path directory: %w", err))
		case !fi.IsDir():
			errs = append(errs, fmt.Errorf("storage.snapshot_path directory %s is not a directory", dir))
		}
	}
	if cfg.SnapshotInterval <= 0 {
		errs = append(errs, errors.New("storage.snapshot_interval must be positive"))
	}
	return errs
}

func verifySecurity(cfg *SecuritySection) []error {
	var errs []error
	if cfg.EncryptionKey != "" && len(cfg.EncryptionKey) < snapshot.MinKeyLength {
		errs = append(errs, fmt.Errorf("security.encryption_key must be at least %d bytes", snapshot.MinKeyLength))
	}
	if _, err := adaptive.ParseCipherType(cfg.Cipher); err != nil {
		errs = append(errs, fmt.Errorf("security.cipher: %w", err))
	}
	return errs
}

func verifyLog(cfg *LogSection) []error {
	var errs []error
	if _, err := logger.ParseLevel(cfg.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(cfg.Format) {
	case "", "json", "text", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format %q: must be json or text", cfg.Format))
	}
	return errs
}
