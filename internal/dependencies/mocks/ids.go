package mocks

import (
	"strconv"
	"sync"

	"github.com/mcoot/tourneyview/internal/dependencies/ids"
)

// MockIDs is a mock implementation of ids.Generator for testing.
// Queued values are returned first, after which IDs are numbered from 1.
type MockIDs struct {
	mu     sync.Mutex
	queued []string
	next   int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// NewID returns the next queued ID, or prefix plus a sequence number
func (g *MockIDs) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.queued) > 0 {
		id := g.queued[0]
		g.queued = g.queued[1:]
		return id
	}
	g.next++
	return prefix + strconv.Itoa(g.next)
}

// Queue adds IDs to be returned verbatim by the next calls
func (g *MockIDs) Queue(values ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.queued = append(g.queued, values...)
}
