package service

import (
	"context"
	"errors"
	"testing"

	"github.com/yndnr/keyval-go/internal/core/domain"
)

func TestSnapshotService_TriggerSnapshot(t *testing.T) {
	store := newMockStore()
	store.Insert("a", "1")
	svc := NewSnapshotService(store, "/data/state.bin", discardLogger())

	info, err := svc.TriggerSnapshot(context.Background())
	if err != nil {
		t.Fatalf("TriggerSnapshot: %v", err)
	}
	if info.Path != "/data/state.bin" || info.KeyCount != 1 {
		t.Errorf("info = %+v", info)
	}
	if len(store.snaps) != 1 || store.snaps[0] != svc.Path() {
		t.Errorf("snapshots = %v", store.snaps)
	}
}

func TestSnapshotService_Error(t *testing.T) {
	store := newMockStore()
	store.snapErr = domain.ErrSnapshotIO.WithDetails("disk full")
	svc := NewSnapshotService(store, "state.bin", discardLogger())

	_, err := svc.TriggerSnapshot(context.Background())
	if !errors.Is(err, domain.ErrSnapshotIO) {
		t.Fatalf("TriggerSnapshot error = %v, want ErrSnapshotIO", err)
	}
}
