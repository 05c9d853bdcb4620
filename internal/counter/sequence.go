// Package counter issues the monotonically increasing quote numbers.
package counter

import (
	"context"
	"sync"
)

// Sequence hands out quote numbers. Next returns the number to stamp on the
// quote being built and advances the persisted counter by exactly one. The
// advance is unconditional: a quote number is never reused even when a
// downstream step fails.
type Sequence interface {
	Next(ctx context.Context) (int64, error)
}

// Memory is an in-process sequence used by tests and as a degraded fallback.
// The mutex serialises concurrent submissions so numbers are never issued
// twice.
type Memory struct {
	mu   sync.Mutex
	next int64
}

// NewMemory returns a sequence whose first issued number is start, or 1
// when start is below 1.
func NewMemory(start int64) *Memory {
	if start < 1 {
		start = 1
	}
	return &Memory{next: start}
}

// Next implements Sequence.
func (m *Memory) Next(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.next
	m.next++
	return n, nil
}
