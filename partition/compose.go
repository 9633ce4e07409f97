package partition

import (
	"fmt"

	"github.com/yukimasano/datasets/internal/mathx"
	"github.com/yukimasano/datasets/types"
)

// Resolve converts parsed named ranges into absolute windows using the given
// size lookup.
//
// A nil From resolves to 0 and a nil To resolves to the split size. Negative
// boundaries count back from the end of the split. Percent boundaries convert
// to offsets as round(pct * size / 100) with round-half-to-even, once per
// addend.
//
// Parameters:
//   - ranges: Parsed addends in expression order
//   - sizes: Split-name to example-count lookup
//
// Returns:
//   - []types.AbsoluteRange: One absolute window per addend, in order
//   - error: ErrUnknownSplit or ErrInvalidRange on bad input
func Resolve(ranges []types.NamedRange, sizes types.SizeLookup) ([]types.AbsoluteRange, error) {
	resolved := make([]types.AbsoluteRange, 0, len(ranges))
	for _, r := range ranges {
		abs, err := absolute(r, sizes)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, abs)
	}

	return resolved, nil
}

// Compose resolves an expression's named ranges and extracts subsplit index
// out of count from each of them.
//
// The remainder strategy is applied independently and identically to every
// addend: each addend rounds its own remainder per its own size, with no
// cross-addend balancing. The result sequence, read in order, is the logical
// content of the subsplit.
//
// Parameters:
//   - ranges: Parsed addends in expression order
//   - count: Total number of subsplits (>= 1)
//   - index: Subsplit index in [0, count)
//   - remainder: RemainderDrop, RemainderBalance or RemainderOnFirst
//   - sizes: Split-name to example-count lookup
//
// Returns:
//   - []types.AbsoluteRange: Subsplit window of every addend, in order
//   - int64: Total examples discarded by RemainderDrop across all addends
//   - error: Resolution or sharding error
func Compose(ranges []types.NamedRange, count, index int, remainder types.Remainder, sizes types.SizeLookup) ([]types.AbsoluteRange, int64, error) {
	resolved, err := Resolve(ranges, sizes)
	if err != nil {
		return nil, 0, err
	}

	var totalDropped int64
	result := make([]types.AbsoluteRange, 0, len(resolved))
	for _, abs := range resolved {
		shardStart, shardEnd, dropped, err := Shard(abs.Start, abs.End, count, index, remainder)
		if err != nil {
			return nil, 0, err
		}
		totalDropped += dropped
		result = append(result, types.AbsoluteRange{Split: abs.Split, Start: shardStart, End: shardEnd})
	}

	return result, totalDropped, nil
}

func absolute(r types.NamedRange, sizes types.SizeLookup) (types.AbsoluteRange, error) {
	size, err := sizes.NumExamples(r.Split)
	if err != nil {
		return types.AbsoluteRange{}, err
	}

	start, err := boundary(r.From, 0, size, r)
	if err != nil {
		return types.AbsoluteRange{}, err
	}
	end, err := boundary(r.To, size, size, r)
	if err != nil {
		return types.AbsoluteRange{}, err
	}
	if start > end {
		return types.AbsoluteRange{}, fmt.Errorf("%w: %s resolves to [%d:%d]", types.ErrInvalidRange, r.Split, start, end)
	}

	return types.AbsoluteRange{Split: r.Split, Start: start, End: end}, nil
}

func boundary(b *int64, fallback, size int64, r types.NamedRange) (int64, error) {
	if b == nil {
		return fallback, nil
	}

	v := *b
	if r.Unit == types.UnitPercent {
		v = mathx.RoundHalfEven(v*size, 100)
	}
	if v < 0 {
		v += size
	}
	if v < 0 || v > size {
		return 0, fmt.Errorf("%w: offset %d outside %s of size %d", types.ErrInvalidRange, v, r.Split, size)
	}

	return v, nil
}
