package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value is stored under the key
var ErrNotFound = errors.New("key not found")

// Keys used by the application
const (
	KeyTournamentData  = "tournamentData"
	KeyIsAdminLoggedIn = "isAdminLoggedIn"
)

// Store is a durable key/value store local to this process.
// A Set must be visible to a following Get of the same key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
