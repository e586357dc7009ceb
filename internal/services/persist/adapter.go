package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/tourneyview/internal/storage"
)

// Adapter gives typed, fail-soft access to a raw key/value store
type Adapter struct {
	store  storage.Store
	logger *slog.Logger
}

// New creates an Adapter over store
func New(store storage.Store, logger *slog.Logger) *Adapter {
	return &Adapter{
		store:  store,
		logger: logger.With(slog.String("component", "persist")),
	}
}

// Validator is implemented by persisted types that can decode cleanly
// and still be unusable
type Validator interface {
	Valid() bool
}

// Read returns the value stored under key decoded as T.
// A missing key, a store failure, an undecodable value, a JSON null or a
// value whose Valid method reports false all yield def.
func Read[T any](ctx context.Context, a *Adapter, key string, def T) T {
	data, err := a.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.logger.Warn("persisted value unreadable, using default",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		return def
	}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		a.logger.Debug("persisted value is null, using default", slog.String("key", key))
		return def
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		a.logger.Debug("persisted value malformed, using default",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return def
	}
	if v, ok := any(value).(Validator); ok && !v.Valid() {
		a.logger.Debug("persisted value invalid, using default", slog.String("key", key))
		return def
	}
	return value
}

// Write encodes value and replaces whatever is stored under key.
// The error is informational: callers keep their in-memory state either way.
func Write[T any](ctx context.Context, a *Adapter, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := a.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
