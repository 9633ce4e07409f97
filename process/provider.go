// Package process provides ProcessContext implementations.
//
// A ProcessContext is the single authority for the (index, count) pair of a
// distributed process group. Providers never mix sources: both values come
// from the constructor (Fixed) or both come from the environment (FromEnv).
package process

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yukimasano/datasets/types"
)

// Fixed is a ProcessContext with explicit index and count.
type Fixed struct {
	index int
	count int
}

// Compile-time assertion that Fixed implements ProcessContext.
var _ types.ProcessContext = (*Fixed)(nil)

// NewFixed creates a process context with the given index and count.
//
// Parameters:
//   - index: Process index in [0, count)
//   - count: Total number of processes (>= 1)
//
// Returns:
//   - *Fixed: Initialized process context
//   - error: ErrInvalidSplitCount or ErrIndexOutOfRange on bad input
//
// Example:
//
//	proc, err := process.NewFixed(2, 8)
//	if err != nil { /* handle */ }
//	split, err := datasets.SplitForProcess("train", proc)
func NewFixed(index, count int) (*Fixed, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: process count must be >= 1, got %d", types.ErrInvalidSplitCount, count)
	}
	if index < 0 || index >= count {
		return nil, fmt.Errorf("%w: process index %d not in [0, %d)", types.ErrIndexOutOfRange, index, count)
	}

	return &Fixed{index: index, count: count}, nil
}

// ProcessIndex returns the index of this process.
func (f *Fixed) ProcessIndex() int { return f.index }

// ProcessCount returns the total number of processes.
func (f *Fixed) ProcessCount() int { return f.count }

// FromEnv creates a process context from two environment variables.
//
// Both variables must be set and parse as integers; index and count always
// come from the same authority, so a single missing variable is an error
// rather than a fallback to a default.
//
// Parameters:
//   - indexKey: Environment variable holding the process index
//   - countKey: Environment variable holding the process count
//
// Returns:
//   - *Fixed: Process context with the parsed values
//   - error: Missing or malformed variables, or values failing NewFixed
//
// Example:
//
//	// Kubernetes indexed jobs expose the completion index.
//	proc, err := process.FromEnv("JOB_COMPLETION_INDEX", "JOB_PARALLELISM")
//	if err != nil { /* handle */ }
func FromEnv(indexKey, countKey string) (*Fixed, error) {
	index, err := intFromEnv(indexKey)
	if err != nil {
		return nil, err
	}
	count, err := intFromEnv(countKey)
	if err != nil {
		return nil, err
	}

	return NewFixed(index, count)
}

func intFromEnv(key string) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not set", types.ErrProcessContextRequired, key)
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", types.ErrProcessContextRequired, key, raw)
	}

	return v, nil
}
