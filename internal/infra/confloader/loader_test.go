package confloader

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	Server struct {
		RPC struct {
			Addr            string        `koanf:"addr"`
			RateLimit       float64       `koanf:"rate_limit"`
			ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
		} `koanf:"rpc"`
	} `koanf:"server"`
	Storage struct {
		SnapshotPath       string        `koanf:"snapshot_path"`
		SnapshotInterval   time.Duration `koanf:"snapshot_interval"`
		SnapshotOnShutdown bool          `koanf:"snapshot_on_shutdown"`
	} `koanf:"storage"`
}

func defaultTestConfig() testConfig {
	var cfg testConfig
	cfg.Server.RPC.Addr = "127.0.0.1:50051"
	cfg.Server.RPC.ShutdownTimeout = 10 * time.Second
	cfg.Storage.SnapshotPath = "./state.bin"
	cfg.Storage.SnapshotInterval = 5 * time.Minute
	return cfg
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
	if l.filePath != "" {
		t.Errorf("filePath = %q, want empty", l.filePath)
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
		WithOverrides(map[string]any{"a.b": 1}),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
	if len(l.overrides) != 1 {
		t.Errorf("overrides = %v, want one entry", l.overrides)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  rpc:
    addr: "0.0.0.0:6000"
storage:
  snapshot_on_shutdown: true
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if addr := l.k.String("server.rpc.addr"); addr != "0.0.0.0:6000" {
		t.Errorf("server.rpc.addr = %q, want %q", addr, "0.0.0.0:6000")
	}
	if !l.k.Bool("storage.snapshot_on_shutdown") {
		t.Error("storage.snapshot_on_shutdown should be true")
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv_SectionSeparator(t *testing.T) {
	t.Setenv("KEYVAL_SERVER__RPC__ADDR", "127.0.0.1:8080")
	t.Setenv("KEYVAL_STORAGE__SNAPSHOT_PATH", "/tmp/state.bin")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if addr := l.k.String("server.rpc.addr"); addr != "127.0.0.1:8080" {
		t.Errorf("server.rpc.addr = %q, want %q", addr, "127.0.0.1:8080")
	}
	if p := l.k.String("storage.snapshot_path"); p != "/tmp/state.bin" {
		t.Errorf("storage.snapshot_path = %q, want %q", p, "/tmp/state.bin")
	}
	if l.k.Get("storage.snapshot.path") != nil {
		t.Error("single underscore must not split a key")
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_SERVER__PORT", "9090")
	t.Setenv("KEYVAL_SERVER__PORT", "1")

	l := NewLoader(WithEnvPrefix("MYAPP_"))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if port := l.k.String("server.port"); port != "9090" {
		t.Errorf("server.port = %q, want %q", port, "9090")
	}
}

func TestLoader_LoadMap_Unflattens(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{
		"server.rpc.addr": "localhost:3000",
		"debug":           true,
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	if addr := l.k.String("server.rpc.addr"); addr != "localhost:3000" {
		t.Errorf("server.rpc.addr = %q, want %q", addr, "localhost:3000")
	}
	if !l.k.Bool("debug") {
		t.Error("debug should be true")
	}
}

func TestLoader_Load_KeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
storage:
  snapshot_interval: "30s"
`)

	cfg := defaultTestConfig()
	l := NewLoader(WithConfigFile(path))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Storage.SnapshotInterval != 30*time.Second {
		t.Errorf("SnapshotInterval = %v, want 30s", cfg.Storage.SnapshotInterval)
	}
	if cfg.Server.RPC.Addr != "127.0.0.1:50051" {
		t.Errorf("Addr = %q, default should be kept", cfg.Server.RPC.Addr)
	}
	if cfg.Storage.SnapshotPath != "./state.bin" {
		t.Errorf("SnapshotPath = %q, default should be kept", cfg.Storage.SnapshotPath)
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
server:
  rpc:
    addr: "from-file:5080"
    shutdown_timeout: "3s"
storage:
  snapshot_path: "/from/file"
`)

	t.Setenv("KEYVAL_SERVER__RPC__ADDR", "from-env:8080")
	t.Setenv("KEYVAL_SERVER__RPC__RATE_LIMIT", "12.5")
	t.Setenv("KEYVAL_STORAGE__SNAPSHOT_PATH", "/from/env")

	cfg := defaultTestConfig()
	l := NewLoader(
		WithConfigFile(path),
		WithOverrides(map[string]any{"storage.snapshot_path": "/from/flag"}),
	)
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.RPC.Addr != "from-env:8080" {
		t.Errorf("Addr = %q, env should override file", cfg.Server.RPC.Addr)
	}
	if cfg.Server.RPC.RateLimit != 12.5 {
		t.Errorf("RateLimit = %v, want 12.5", cfg.Server.RPC.RateLimit)
	}
	if cfg.Server.RPC.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 3s", cfg.Server.RPC.ShutdownTimeout)
	}
	if cfg.Storage.SnapshotPath != "/from/flag" {
		t.Errorf("SnapshotPath = %q, overrides should win", cfg.Storage.SnapshotPath)
	}
}

func TestLoader_Load_BadFile(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")

	cfg := defaultTestConfig()
	l := NewLoader(WithConfigFile(path))
	if err := l.Load(&cfg); err == nil {
		t.Fatal("Load() should fail on malformed YAML")
	}
}
