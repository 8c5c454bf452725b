package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/yndnr/keyval-go/internal/core/service"
	"github.com/yndnr/keyval-go/internal/infra/buildinfo"
	"github.com/yndnr/keyval-go/internal/infra/confloader"
	"github.com/yndnr/keyval-go/internal/infra/shutdown"
	"github.com/yndnr/keyval-go/internal/server/config"
	"github.com/yndnr/keyval-go/internal/server/rpcserver"
	"github.com/yndnr/keyval-go/internal/storage"
	"github.com/yndnr/keyval-go/internal/storage/snapshot"
	"github.com/yndnr/keyval-go/internal/telemetry/logger"
	"github.com/yndnr/keyval-go/internal/telemetry/metric"
	"github.com/yndnr/keyval-go/pkg/crypto/adaptive"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile   = flag.String("config", "", "Path to configuration file")
		showVersion  = flag.Bool("version", false, "Show version information")
		addr         = flag.String("addr", "", "Listen address (overrides server.rpc.addr)")
		snapshotPath = flag.String("snapshot-path", "", "Snapshot file (overrides storage.snapshot_path)")
		logLevel     = flag.String("log-level", "", "Log level (overrides log.level)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("keyval-server %s\n", buildinfo.String())
		return nil
	}

	// Only flags given on the command line override file and env values.
	overrides := map[string]any{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			overrides["server.rpc.addr"] = *addr
		case "snapshot-path":
			overrides["storage.snapshot_path"] = *snapshotPath
		case "log-level":
			overrides["log.level"] = *logLevel
		}
	})

	cfg, err := loadConfig(*configFile, overrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	log, err := logger.New(logCfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	slog.SetDefault(log)

	log.Info("starting keyval-server",
		"version", buildinfo.Get().Version,
		"commit", buildinfo.Get().Commit,
		"config_file", *configFile,
		"config", config.Sanitize(cfg))

	metrics := metric.NewRegistry()

	engine, err := initStorage(cfg, log, metrics)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	metrics.MustRegister(metric.NewStoreCollector(engine))

	valueSvc := service.NewValueService(engine, log)
	snapshotSvc := service.NewSnapshotService(engine, cfg.Storage.SnapshotPath, log)

	srv := rpcserver.New(rpcserver.Config{
		Addr:      cfg.Server.RPC.Addr,
		RateLimit: cfg.Server.RPC.RateLimit,
		RateBurst: cfg.Server.RPC.RateBurst,
		Logger:    log,
		Metrics:   metrics,
	}, valueSvc, snapshotSvc)

	snapshotter := storage.NewPeriodicSnapshotter(engine, storage.SnapshotterConfig{
		Path:               cfg.Storage.SnapshotPath,
		Interval:           cfg.Storage.SnapshotInterval,
		SnapshotOnShutdown: cfg.Storage.SnapshotOnShutdown,
		Logger:             log,
	})

	g, gctx := errgroup.WithContext(context.Background())

	g.Go(srv.ListenAndServe)

	snapCtx, stopSnapshots := context.WithCancel(context.Background())
	snapDone := make(chan struct{})
	g.Go(func() error {
		defer close(snapDone)
		return snapshotter.Run(snapCtx)
	})

	shutdownHandler := shutdown.NewHandler(cfg.Server.RPC.ShutdownTimeout, shutdown.WithLogger(log))

	// Hooks run in reverse: stop traffic, then snapshots, then the watcher.
	if *configFile != "" {
		watcher, err := watchLogLevel(*configFile, overrides, log)
		if err != nil {
			log.Warn("config watcher disabled", "error", err)
		} else {
			shutdownHandler.OnShutdown("config watcher", func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	shutdownHandler.OnShutdown("snapshotter", func(ctx context.Context) error {
		stopSnapshots()
		select {
		case <-snapDone:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	shutdownHandler.OnShutdown("rpc server", srv.Shutdown)

	log.Info("server started", "addr", cfg.Server.RPC.Addr, "snapshot_path", cfg.Storage.SnapshotPath)

	var result *multierror.Error
	if err := shutdownHandler.Wait(gctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("shutdown: %w", err))
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file, environment and flags.
func loadConfig(configFile string, overrides map[string]any) (*config.ServerConfig, error) {
	cfg := config.Default()

	loader := confloader.NewLoader(
		confloader.WithConfigFile(configFile),
		confloader.WithOverrides(overrides),
	)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initStorage builds the snapshot repository and loads the engine from the
// snapshot file, falling back to an empty store.
func initStorage(cfg *config.ServerConfig, log *slog.Logger, metrics *metric.Registry) (*storage.Engine, error) {
	cipherType, err := adaptive.ParseCipherType(cfg.Security.Cipher)
	if err != nil {
		return nil, err
	}
	aead, err := snapshot.NewCipher(cfg.Security.EncryptionKey, cipherType)
	if err != nil {
		return nil, fmt.Errorf("snapshot cipher: %w", err)
	}

	var repoOpts []snapshot.Option
	if aead != nil {
		repoOpts = append(repoOpts, snapshot.WithCipher(aead))
		log.Info("snapshot encryption enabled", "cipher", string(aead.Type()))
	}

	return storage.LoadOrFresh(cfg.Storage.SnapshotPath,
		storage.WithRepository(snapshot.NewRepository(repoOpts...)),
		storage.WithLogger(log),
		storage.WithMetrics(metrics),
	), nil
}

// watchLogLevel re-reads the config file on change and applies its log
// level. Other settings need a restart.
func watchLogLevel(configFile string, overrides map[string]any, log *slog.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(configFile); err != nil {
		_ = watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(path string) {
		cfg, err := loadConfig(configFile, overrides)
		if err != nil {
			log.Warn("config reload failed, keeping current settings", "path", path, "error", err)
			return
		}
		if cfg.Log.Level == logger.GetLevel() {
			return
		}
		if err := logger.SetLevel(cfg.Log.Level); err != nil {
			log.Warn("invalid log level in reloaded config", "level", cfg.Log.Level, "error", err)
			return
		}
		log.Info("log level changed", "level", cfg.Log.Level)
	})

	watcher.StartAsync()
	return watcher, nil
}
