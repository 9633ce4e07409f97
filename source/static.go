package source

import (
	"fmt"
	"sync"

	"github.com/yukimasano/datasets/types"
)

// Static implements a size lookup backed by a fixed in-memory table.
type Static struct {
	mu    sync.RWMutex
	sizes map[string]int64
}

var _ types.SizeLookup = (*Static)(nil)

// NewStatic creates a new static size lookup.
//
// The lookup serves a fixed split-name to example-count table. Useful for
// testing and for datasets whose metadata is known at startup.
//
// Parameters:
//   - sizes: Split name to total example count
//
// Returns:
//   - *Static: Initialized static lookup
//
// Example:
//
//	sizes := source.NewStatic(map[string]int64{
//	    "train": 60000,
//	    "test":  10000,
//	})
//	ranges, err := split.Resolve(sizes)
//	if err != nil { /* handle */ }
func NewStatic(sizes map[string]int64) *Static {
	s := &Static{sizes: make(map[string]int64, len(sizes))}
	for name, n := range sizes {
		s.sizes[name] = n
	}

	return s
}

// NumExamples returns the total example count of the named split.
//
// Parameters:
//   - split: Split name (e.g. "train")
//
// Returns:
//   - int64: Total example count
//   - error: ErrUnknownSplit if the split is not in the table
func (s *Static) NumExamples(split string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.sizes[split]
	if !ok {
		return 0, fmt.Errorf("%w: %q", types.ErrUnknownSplit, split)
	}

	return n, nil
}

// Update replaces the size table.
//
// This allows the static lookup to simulate metadata refreshes, which is
// useful for testing repeated resolution of lazy subsplits.
//
// Parameters:
//   - sizes: New split name to example count table
func (s *Static) Update(sizes map[string]int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sizes = make(map[string]int64, len(sizes))
	for name, n := range sizes {
		s.sizes[name] = n
	}
}
