package service

import (
	"context"
	"log/slog"

	"github.com/yndnr/keyval-go/internal/storage/snapshot"
)

// SnapshotStore is the storage the SnapshotService works on.
type SnapshotStore interface {
	Snapshot(path string) (*snapshot.Info, error)
}

// SnapshotService takes snapshots on demand.
type SnapshotService struct {
	store  SnapshotStore
	path   string
	logger *slog.Logger
}

// NewSnapshotService creates a service that snapshots store to path.
func NewSnapshotService(store SnapshotStore, path string, logger *slog.Logger) *SnapshotService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotService{store: store, path: path, logger: logger}
}

// TriggerSnapshot writes a snapshot to the configured path now.
func (s *SnapshotService) TriggerSnapshot(ctx context.Context) (*snapshot.Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := s.store.Snapshot(s.path)
	if err != nil {
		s.logger.ErrorContext(ctx, "on-demand snapshot failed", "path", s.path, "error", err)
		return nil, err
	}
	s.logger.InfoContext(ctx, "on-demand snapshot saved",
		"path", info.Path,
		"keys", info.KeyCount,
		"size_bytes", info.Size)
	return info, nil
}

// Path returns the snapshot path.
func (s *SnapshotService) Path() string {
	return s.path
}
