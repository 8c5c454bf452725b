package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/yndnr/keyval-go/internal/core/domain"
	"github.com/yndnr/keyval-go/internal/storage"
	"github.com/yndnr/keyval-go/internal/storage/snapshot"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockStore is a map-backed ValueStore and SnapshotStore.
type mockStore struct {
	data    map[string]string
	snapErr error
	snaps   []string
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) Get(key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) Insert(key, value string) {
	m.data[key] = value
}

func (m *mockStore) Snapshot(path string) (*snapshot.Info, error) {
	if m.snapErr != nil {
		return nil, m.snapErr
	}
	m.snaps = append(m.snaps, path)
	return &snapshot.Info{Path: path, KeyCount: len(m.data)}, nil
}

func TestValueService_InsertThenGet(t *testing.T) {
	svc := NewValueService(newMockStore(), discardLogger())
	ctx := context.Background()

	ack, err := svc.InsertKeyValue(ctx, "sample_key", "sample_value")
	if err != nil {
		t.Fatalf("InsertKeyValue: %v", err)
	}
	if ack != InsertAck {
		t.Errorf("ack = %q, want %q", ack, InsertAck)
	}

	v, err := svc.GetValue(ctx, "sample_key")
	if err != nil {
		t.Fatalf("GetValue: %v", err)
	}
	if v != "sample_value" {
		t.Errorf("GetValue = %q, want sample_value", v)
	}
}

func TestValueService_GetMissing(t *testing.T) {
	svc := NewValueService(newMockStore(), discardLogger())

	_, err := svc.GetValue(context.Background(), "missing")
	if !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("GetValue error = %v, want ErrKeyNotFound", err)
	}
}

func TestValueService_AcceptsAnyContent(t *testing.T) {
	svc := NewValueService(newMockStore(), discardLogger())
	ctx := context.Background()

	tests := []struct{ key, value string }{
		{"", ""},
		{"k", ""},
		{"", "v"},
		{"スペース key", "multi\nline\tvalue"},
	}
	for _, tt := range tests {
		if _, err := svc.InsertKeyValue(ctx, tt.key, tt.value); err != nil {
			t.Fatalf("InsertKeyValue(%q, %q): %v", tt.key, tt.value, err)
		}
		if v, err := svc.GetValue(ctx, tt.key); err != nil || v != tt.value {
			t.Fatalf("GetValue(%q) = %q, %v; want %q", tt.key, v, err, tt.value)
		}
	}
}

func TestValueService_CancelledContext(t *testing.T) {
	store := newMockStore()
	svc := NewValueService(store, discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.InsertKeyValue(ctx, "k", "v"); !errors.Is(err, context.Canceled) {
		t.Fatalf("InsertKeyValue error = %v, want context.Canceled", err)
	}
	if len(store.data) != 0 {
		t.Fatal("cancelled insert must not modify the store")
	}
	if _, err := svc.GetValue(ctx, "k"); !errors.Is(err, context.Canceled) {
		t.Fatalf("GetValue error = %v, want context.Canceled", err)
	}
}

func TestValueService_WithEngine(t *testing.T) {
	e := storage.Fresh(storage.WithLogger(discardLogger()))
	svc := NewValueService(e, discardLogger())
	ctx := context.Background()

	if _, err := svc.GetValue(ctx, "missing"); !errors.Is(err, domain.ErrKeyNotFound) {
		t.Fatalf("GetValue error = %v, want not found", err)
	}
	if _, err := svc.InsertKeyValue(ctx, "k", "v1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.InsertKeyValue(ctx, "k", "v2"); err != nil {
		t.Fatal(err)
	}
	if v, _ := svc.GetValue(ctx, "k"); v != "v2" {
		t.Fatalf("GetValue(k) = %q, want v2", v)
	}
}

func TestValueService_InsertDoesNotLogValue(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := NewValueService(newMockStore(), log)

	if _, err := svc.InsertKeyValue(context.Background(), "k", "top-secret-value"); err != nil {
		t.Fatalf("InsertKeyValue: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "top-secret-value") {
		t.Errorf("log contains the stored value: %s", out)
	}
	if !strings.Contains(out, `"value_len":16`) {
		t.Errorf("log should record the value length: %s", out)
	}
}

func TestValueService_InsertAck(t *testing.T) {
	svc := NewValueService(newMockStore(), discardLogger())

	ack, err := svc.InsertKeyValue(context.Background(), "k", "v")
	if err != nil {
		t.Fatalf("InsertKeyValue: %v", err)
	}
	if ack != "value" {
		t.Errorf("ack = %q, want %q", ack, "value")
	}
}
