package datasets

import (
	"fmt"

	"github.com/yukimasano/datasets/expr"
	"github.com/yukimasano/datasets/internal/mathx"
	"github.com/yukimasano/datasets/types"
)

// EvenSplits generates a list of n non-overlapping subsplits of the same
// size.
//
// With the default RemainderLegacyPercent strategy the expression must be a
// bare split name, n must be in [1, 100], and the result is a list of
// percentage-bounded Expressions resolved entirely at call time:
//
//	splits, _ := datasets.EvenSplits("train", 3)
//	// ["train[0%:33%]", "train[33%:67%]", "train[67%:100%]"]
//
// With any other strategy the expression may be windowed or concatenated,
// n only has to be >= 1, and the result is a list of lazy descriptors that
// resolve once split sizes are available:
//
//	splits, _ := datasets.EvenSplits("test[75%:]+train", 4,
//	    datasets.WithRemainder(datasets.RemainderDrop))
//	ranges, err := splits[0].Resolve(sizes)
//
// Parameters:
//   - split: Split expression (e.g. "train", "test[75%:]")
//   - n: Number of subsplits to create
//   - opts: Optional configuration (WithRemainder, WithLogger, WithMetrics)
//
// Returns:
//   - []Split: The n subsplits, in index order
//   - error: ErrInvalidSplitCount, ErrComposedSplit or ErrInvalidRemainder
func EvenSplits(split string, n int, opts ...Option) ([]Split, error) {
	o := newSplitOptions(types.RemainderLegacyPercent, opts...)

	remainder := *o.remainder
	if !remainder.Valid() {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidRemainder, remainder)
	}
	if remainder == types.RemainderLegacyPercent {
		return evenSplitsPercent(split, n)
	}

	if n < 1 {
		return nil, fmt.Errorf("%w: n should be >= 1, got %d", types.ErrInvalidSplitCount, n)
	}

	splits := make([]Split, 0, n)
	for i := 0; i < n; i++ {
		splits = append(splits, &evenSplit{
			split:     split,
			index:     i,
			count:     n,
			remainder: remainder,
			logger:    o.logger,
			metrics:   o.metrics,
		})
	}

	return splits, nil
}

// evenSplitsPercent is the legacy percentage-boundary implementation. It
// never needs example counts: boundaries are round(i*100/n) percent, rounded
// half to even, so adjacent subsplits share each boundary exactly.
func evenSplitsPercent(split string, n int) ([]Split, error) {
	if expr.IsComposed(split) {
		return nil, fmt.Errorf("%w: %q (set an explicit non-legacy remainder for composed expressions)",
			types.ErrComposedSplit, split)
	}
	if n <= 0 || n > 100 {
		return nil, fmt.Errorf("%w: n should be > 0 and <= 100, got %d (use RemainderBalance for more precise splits)",
			types.ErrInvalidSplitCount, n)
	}

	boundaries := make([]int64, n+1)
	for i := range boundaries {
		boundaries[i] = mathx.RoundHalfEven(int64(i)*100, int64(n))
	}

	splits := make([]Split, 0, n)
	for i := 0; i < n; i++ {
		splits = append(splits, Expression(expr.FormatPercentWindow(split, boundaries[i], boundaries[i+1])))
	}

	return splits, nil
}
