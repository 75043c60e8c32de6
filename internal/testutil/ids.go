package testutil

import (
	"fmt"
	"sync"
)

// FixedIDGenerator returns predetermined record IDs.
//
// With explicit IDs it returns them in order and panics once they run out,
// catching tests that write more records than expected. With no IDs it
// counts: "rec-001", "rec-002", ...
//
// Thread-safety: FixedIDGenerator is safe for concurrent use via internal mutex.
type FixedIDGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedIDGenerator creates a generator over ids.
//
// Example:
//
//	gen := NewFixedIDGenerator("a", "b")
//	gen.Generate() // "a"
//	gen.Generate() // "b"
//	gen.Generate() // panic: all IDs exhausted
func NewFixedIDGenerator(ids ...string) *FixedIDGenerator {
	return &FixedIDGenerator{ids: ids}
}

// Generate returns the next ID.
func (g *FixedIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.idx++
	if len(g.ids) == 0 {
		return fmt.Sprintf("rec-%03d", g.idx)
	}
	if g.idx > len(g.ids) {
		panic("FixedIDGenerator: all IDs exhausted")
	}
	return g.ids[g.idx-1]
}
