package ids

import (
	"github.com/google/uuid"
)

// Generator produces unique identifiers that can be mocked for testing
type Generator interface {
	// NewID returns a fresh identifier starting with prefix
	NewID(prefix string) string
}

// UUIDGenerator implements Generator using random UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns prefix followed by a random UUID
func (g *UUIDGenerator) NewID(prefix string) string {
	return prefix + uuid.NewString()
}
