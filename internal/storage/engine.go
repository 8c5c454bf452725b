package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	"github.com/yndnr/keyval-go/internal/core/domain"
	"github.com/yndnr/keyval-go/internal/storage/memory"
	"github.com/yndnr/keyval-go/internal/storage/snapshot"
	"github.com/yndnr/keyval-go/internal/telemetry/metric"
)

// Engine provides serialized access to a single in-memory store.
type Engine struct {
	mu    sync.Mutex
	store *memory.Store

	repo    *snapshot.Repository
	logger  *slog.Logger
	metrics *metric.Registry
}

// Option configures an Engine.
type Option func(*Engine)

// WithRepository sets the snapshot repository used for loading and saving.
func WithRepository(r *snapshot.Repository) Option {
	return func(e *Engine) {
		e.repo = r
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithMetrics sets the metrics registry. Snapshot attempts are recorded on it.
func WithMetrics(m *metric.Registry) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

func newEngine(store *memory.Store, opts []Option) *Engine {
	e := &Engine{store: store}
	for _, opt := range opts {
		opt(e)
	}
	if e.repo == nil {
		e.repo = snapshot.NewRepository()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Fresh creates an engine wrapping an empty store.
func Fresh(opts ...Option) *Engine {
	return newEngine(memory.New(), opts)
}

// LoadStrict creates an engine from the snapshot at path. Any load failure
// is returned: domain.ErrSnapshotIO when the file cannot be read,
// domain.ErrSnapshotDecode when its content is invalid.
func LoadStrict(path string, opts ...Option) (*Engine, error) {
	e := newEngine(nil, opts)

	store, err := e.repo.Load(path)
	if err != nil {
		return nil, err
	}
	e.store = store
	return e, nil
}

// LoadOrFresh creates an engine from the snapshot at path, or an empty one
// if the snapshot cannot be loaded. It never fails. The fallback reason is
// logged so a missing or corrupt snapshot is visible to operators.
func LoadOrFresh(path string, opts ...Option) *Engine {
	e := newEngine(nil, opts)

	store, err := e.repo.Load(path)
	switch {
	case err == nil:
		e.store = store
		e.logger.Info("snapshot loaded", "path", path, "keys", store.Len())
	case errors.Is(err, fs.ErrNotExist):
		e.store = memory.New()
		e.logger.Info("no snapshot found, starting empty", "path", path)
	default:
		e.store = memory.New()
		e.logger.Warn("snapshot unreadable, starting empty", "path", path, "error", err)
	}
	return e
}

// Get returns the value stored under key, or domain.ErrKeyNotFound.
func (e *Engine) Get(key string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v, ok := e.store.Get(key)
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return v, nil
}

// Insert stores value under key, overwriting any previous value.
func (e *Engine) Insert(key, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.store.Insert(key, value)
}

// Len returns the number of stored keys.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.store.Len()
}

// View calls fn with the store while holding the engine lock. The lock is
// released when fn returns or panics. fn must not retain the store.
func (e *Engine) View(fn func(*memory.Store) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fn(e.store)
}

// Snapshot writes the current store to path. The lock is held for the
// whole encode and write so no insert can interleave with it.
func (e *Engine) Snapshot(path string) (*snapshot.Info, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	info, err := e.repo.Save(e.store, path)
	elapsed := time.Since(start)

	if err != nil {
		e.metrics.ObserveSnapshot(elapsed, 0, err)
		return nil, fmt.Errorf("storage: snapshot: %w", err)
	}
	e.metrics.ObserveSnapshot(elapsed, info.Size, nil)

	e.logger.Debug("snapshot written",
		"path", info.Path,
		"keys", info.KeyCount,
		"size_bytes", info.Size,
		"duration", elapsed)
	return info, nil
}
