package services

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// uuidGenerator implements IDGenerator with random UUIDs
type uuidGenerator struct{}

// NewIDGenerator creates the production ID generator
func NewIDGenerator() IDGenerator {
	return &uuidGenerator{}
}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

// sequentialIDGenerator hands out "id-1", "id-2", ... for deterministic tests.
type sequentialIDGenerator struct {
	counter atomic.Int64
}

// NewSequentialIDGenerator creates a deterministic ID generator for tests.
func NewSequentialIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

func (g *sequentialIDGenerator) NewID() string {
	return fmt.Sprintf("id-%d", g.counter.Add(1))
}
