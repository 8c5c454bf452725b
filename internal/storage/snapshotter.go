package storage

import (
	"context"
	"log/slog"
	"time"

	"github.com/yndnr/keyval-go/internal/storage/snapshot"
)

// DefaultSnapshotInterval is the interval between periodic snapshots.
const DefaultSnapshotInterval = 5 * time.Minute

// Snapshotter persists a store to a path.
type Snapshotter interface {
	Snapshot(path string) (*snapshot.Info, error)
}

// SnapshotterConfig configures a PeriodicSnapshotter.
type SnapshotterConfig struct {
	// Path is the snapshot file.
	Path string

	// Interval between snapshots. Zero means DefaultSnapshotInterval.
	Interval time.Duration

	// SnapshotOnShutdown takes one last snapshot when Run's context is
	// cancelled.
	SnapshotOnShutdown bool

	Logger *slog.Logger
}

// PeriodicSnapshotter snapshots a target on a fixed interval.
type PeriodicSnapshotter struct {
	target Snapshotter
	cfg    SnapshotterConfig
	logger *slog.Logger

	// newTicker is replaced in tests.
	newTicker func(time.Duration) (<-chan time.Time, func())
}

// NewPeriodicSnapshotter creates a snapshotter for target.
func NewPeriodicSnapshotter(target Snapshotter, cfg SnapshotterConfig) *PeriodicSnapshotter {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultSnapshotInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PeriodicSnapshotter{
		target: target,
		cfg:    cfg,
		logger: logger.With("component", "snapshotter"),
		newTicker: func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		},
	}
}

// Run snapshots the target every interval until ctx is cancelled. The first
// snapshot happens one full interval after Run starts. Snapshot failures are
// logged and never stop the loop. Run always returns nil.
func (p *PeriodicSnapshotter) Run(ctx context.Context) error {
	tick, stop := p.newTicker(p.cfg.Interval)
	defer stop()

	p.logger.Info("periodic snapshots started", "path", p.cfg.Path, "interval", p.cfg.Interval)

	for {
		select {
		case <-tick:
			p.snapshot("periodic")

		case <-ctx.Done():
			if p.cfg.SnapshotOnShutdown {
				p.snapshot("shutdown")
			}
			p.logger.Info("periodic snapshots stopped")
			return nil
		}
	}
}

func (p *PeriodicSnapshotter) snapshot(reason string) {
	info, err := p.target.Snapshot(p.cfg.Path)
	if err != nil {
		p.logger.Error("snapshot failed", "reason", reason, "path", p.cfg.Path, "error", err)
		return
	}
	p.logger.Info("snapshot saved",
		"reason", reason,
		"path", info.Path,
		"keys", info.KeyCount,
		"size_bytes", info.Size)
}
