package partition

import (
	"fmt"

	"github.com/yukimasano/datasets/types"
)

// Shard computes the window of subsplit index out of count over the absolute
// range [start, end).
//
// Every subsplit receives a baseline of (end-start)/count examples; the
// remainder strategy decides where the (end-start)%count leftover examples
// go. With RemainderDrop the leftover examples belong to no subsplit and
// their number is returned as dropped so the caller can surface a warning;
// it is zero for every other strategy and whenever the division is even.
//
// Parameters:
//   - start: Inclusive range start (>= 0)
//   - end: Exclusive range end (>= start)
//   - count: Total number of subsplits (>= 1)
//   - index: Subsplit index in [0, count)
//   - remainder: RemainderDrop, RemainderBalance or RemainderOnFirst
//
// Returns:
//   - shardStart, shardEnd: Absolute window of subsplit index
//   - dropped: Examples discarded by RemainderDrop (0 otherwise)
//   - error: ErrInvalidSplitCount, ErrIndexOutOfRange, ErrInvalidRange or
//     ErrInvalidRemainder on bad input
func Shard(start, end int64, count, index int, remainder types.Remainder) (shardStart, shardEnd, dropped int64, err error) {
	if count < 1 {
		return 0, 0, 0, fmt.Errorf("%w: count must be >= 1, got %d", types.ErrInvalidSplitCount, count)
	}
	if index < 0 || index >= count {
		return 0, 0, 0, fmt.Errorf("%w: index %d not in [0, %d)", types.ErrIndexOutOfRange, index, count)
	}
	if start < 0 || end < start {
		return 0, 0, 0, fmt.Errorf("%w: [%d:%d]", types.ErrInvalidRange, start, end)
	}

	numExamples := end - start
	examplesPerShard := numExamples / int64(count)
	shardStart = start + examplesPerShard*int64(index)
	shardEnd = start + examplesPerShard*int64(index+1)

	numUnused := numExamples % int64(count)
	if numUnused > 0 {
		switch remainder {
		case types.RemainderDrop:
			dropped = numUnused
		case types.RemainderBalance:
			shardStart += min(int64(index), numUnused)
			shardEnd += min(int64(index+1), numUnused)
		case types.RemainderOnFirst:
			shardEnd += numUnused
			if index > 0 {
				shardStart += numUnused
			}
		default:
			return 0, 0, 0, fmt.Errorf("%w: %v", types.ErrInvalidRemainder, remainder)
		}
	} else if !remainder.Valid() || remainder == types.RemainderLegacyPercent {
		return 0, 0, 0, fmt.Errorf("%w: %v", types.ErrInvalidRemainder, remainder)
	}

	// Broken windows here mean a bug in the arithmetic above, not bad input.
	if shardStart < start || shardEnd < shardStart || shardEnd > end {
		panic(fmt.Sprintf("partition: window [%d:%d] escapes range [%d:%d] (count=%d index=%d remainder=%v)",
			shardStart, shardEnd, start, end, count, index, remainder))
	}

	return shardStart, shardEnd, dropped, nil
}
