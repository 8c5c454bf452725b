package service

import (
	"context"
	"log/slog"
)

// InsertAck is the acknowledgement returned by a successful insert. Clients
// of the first gRPC release of keyval.Value compare against this text.
const InsertAck = "value"

// ValueStore is the storage the ValueService works on.
type ValueStore interface {
	// Get returns the value for key or domain.ErrKeyNotFound.
	Get(key string) (string, error)

	// Insert stores value under key, overwriting any previous value.
	Insert(key, value string)
}

// ValueService implements key lookup and insert.
type ValueService struct {
	store  ValueStore
	logger *slog.Logger
}

// NewValueService creates a new ValueService.
func NewValueService(store ValueStore, logger *slog.Logger) *ValueService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ValueService{store: store, logger: logger}
}

// GetValue returns the value stored under key. A missing key yields
// domain.ErrKeyNotFound.
func (s *ValueService) GetValue(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	v, err := s.store.Get(key)
	if err != nil {
		s.logger.DebugContext(ctx, "get value miss", "key", key)
		return "", err
	}
	return v, nil
}

// InsertKeyValue stores value under key and returns InsertAck. Any key and
// value are accepted, including empty strings.
func (s *ValueService) InsertKeyValue(ctx context.Context, key, value string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.store.Insert(key, value)
	s.logger.DebugContext(ctx, "value inserted", "key", key, "value_len", len(value))
	return InsertAck, nil
}
