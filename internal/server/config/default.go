package config

import "time"

// Default configuration values.
const (
	DefaultRPCAddr         = "127.0.0.1:50051"
	DefaultShutdownTimeout = 10 * time.Second

	DefaultSnapshotPath     = "./state.bin"
	DefaultSnapshotInterval = 5 * time.Minute

	DefaultCipher = "auto"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			RPC: RPCConfig{
				Addr:            DefaultRPCAddr,
				ShutdownTimeout: DefaultShutdownTimeout,
			},
		},
		Storage: StorageSection{
			SnapshotPath:       DefaultSnapshotPath,
			SnapshotInterval:   DefaultSnapshotInterval,
			SnapshotOnShutdown: false,
		},
		Security: SecuritySection{
			Cipher: DefaultCipher,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
