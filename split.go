package datasets

import (
	"fmt"

	"github.com/yukimasano/datasets/expr"
	"github.com/yukimasano/datasets/partition"
	"github.com/yukimasano/datasets/types"
)

// Split is a read instruction that resolves to absolute ranges once split
// sizes are known.
//
// Implementations are immutable values. Resolve is idempotent: for the same
// size lookup contents it always yields the same ranges, and concurrent
// resolutions need no coordination.
type Split interface {
	// String renders the split in a human-readable form. For Expression the
	// result is re-parseable split-spec syntax.
	String() string

	// Resolve computes the absolute [start, end) windows of this split.
	//
	// Parameters:
	//   - sizes: Split-name to example-count lookup
	//
	// Returns:
	//   - []types.AbsoluteRange: One window per addend, in expression order
	//   - error: Parse or resolution error
	Resolve(sizes types.SizeLookup) ([]types.AbsoluteRange, error)
}

// Expression is a textual split in split-spec syntax, such as "train",
// "test[75%:]" or "train[:800]+validation". Legacy percent mode produces
// Expression values.
type Expression string

var _ Split = Expression("")

// String returns the expression itself.
func (e Expression) String() string { return string(e) }

// Resolve parses the expression and converts every addend to absolute
// offsets using the given sizes.
func (e Expression) Resolve(sizes types.SizeLookup) ([]types.AbsoluteRange, error) {
	ranges, err := expr.Parse(string(e))
	if err != nil {
		return nil, err
	}

	return partition.Resolve(ranges, sizes)
}

// evenSplit is a lazy descriptor of one subsplit of an expression. The
// arithmetic is deferred until Resolve because split sizes may not be known
// when the descriptor is built.
type evenSplit struct {
	split     string
	index     int
	count     int
	remainder types.Remainder
	logger    types.Logger
	metrics   types.MetricsCollector
}

var _ Split = (*evenSplit)(nil)

// String describes the subsplit without resolving it.
func (s *evenSplit) String() string {
	return fmt.Sprintf("%s(subsplit %d/%d, remainder=%s)", s.split, s.index, s.count, s.remainder)
}

// Resolve extracts subsplit index out of count from every addend of the
// expression and concatenates the results in expression order.
func (s *evenSplit) Resolve(sizes types.SizeLookup) ([]types.AbsoluteRange, error) {
	ranges, err := expr.Parse(s.split)
	if err != nil {
		return nil, err
	}

	result, dropped, err := partition.Compose(ranges, s.count, s.index, s.remainder, sizes)
	if err != nil {
		return nil, err
	}

	if dropped > 0 {
		// With RemainderDrop every subsplit gets the same share, so the
		// expression total is the per-subsplit share times count plus the
		// dropped examples.
		var share int64
		for _, r := range result {
			share += r.NumExamples()
		}
		s.logger.Warn("dropping examples not divisible by subsplit count",
			"split", s.split, "dropped", dropped, "total", share*int64(s.count)+dropped, "count", s.count)
		s.metrics.RecordDroppedExamples(s.split, dropped)
	}
	s.metrics.RecordResolution(s.remainder, len(result))

	return result, nil
}

// Concat joins two splits into one that reads a followed by b.
//
// Only textual Expressions can be joined: the result is their "+"
// concatenation, which is plain re-parseable syntax. Joining lazy subsplit
// descriptors is intentionally unsupported, because resolving the combined
// arithmetic would require both descriptors' underlying sizes and remainder
// strategies simultaneously.
//
// Parameters:
//   - a, b: Splits to concatenate, in read order
//
// Returns:
//   - Split: Combined expression
//   - error: ErrLazySplitConcat if either input is a lazy descriptor
func Concat(a, b Split) (Split, error) {
	ea, aOK := a.(Expression)
	eb, bOK := b.(Expression)
	if !aOK || !bOK {
		return nil, fmt.Errorf("%w: %s + %s", types.ErrLazySplitConcat, a, b)
	}

	return Expression(string(ea) + "+" + string(eb)), nil
}
