package config

import "time"

// ServerConfig is the root configuration for keyval-server.
type ServerConfig struct {
	Server   ServerSection   `koanf:"server"`
	Storage  StorageSection  `koanf:"storage"`
	Security SecuritySection `koanf:"security"`
	Log      LogSection      `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	RPC RPCConfig `koanf:"rpc"`
}

// RPCConfig configures the RPC listener.
type RPCConfig struct {
	// Addr is the listen address for gRPC, gRPC-Web and Connect clients.
	Addr string `koanf:"addr"`

	// RateLimit is the sustained request rate allowed per second.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit"`

	// RateBurst is the token bucket size. Zero means one second of RateLimit.
	RateBurst int `koanf:"rate_burst"`

	// ShutdownTimeout bounds how long in-flight requests may take to finish.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// StorageSection configures snapshot persistence.
type StorageSection struct {
	// SnapshotPath is the snapshot file loaded at startup and written on
	// every snapshot.
	SnapshotPath string `koanf:"snapshot_path"`

	// SnapshotInterval is the time between periodic snapshots.
	SnapshotInterval time.Duration `koanf:"snapshot_interval"`

	// SnapshotOnShutdown takes a final snapshot during graceful shutdown.
	SnapshotOnShutdown bool `koanf:"snapshot_on_shutdown"`
}

// SecuritySection configures at-rest encryption.
type SecuritySection struct {
	// EncryptionKey enables snapshot encryption when set (min 16 bytes).
	EncryptionKey string `koanf:"encryption_key"`

	// Cipher selects the algorithm: auto, aes-gcm or chacha20-poly1305.
	Cipher string `koanf:"cipher"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
