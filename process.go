package datasets

import (
	"fmt"

	"github.com/yukimasano/datasets/types"
)

// SplitForProcess returns the subsplit of the data for one process of a
// distributed computation.
//
// All cooperating processes resolve a non-overlapping slice of the same
// split. Index and count come together from the injected process context;
// the call is a thin wrapper equivalent to:
//
//	splits, _ := datasets.EvenSplits(split, proc.ProcessCount(),
//	    datasets.WithRemainder(datasets.RemainderDrop))
//	split := splits[proc.ProcessIndex()]
//
// By default, if examples can't be evenly distributed across processes, the
// extra examples are dropped.
//
// Parameters:
//   - split: Split expression to distribute (e.g. "train[:800]+validation[:100]")
//   - proc: Process context supplying (index, count); see the process package
//   - opts: Optional configuration (WithRemainder, WithLogger, WithMetrics)
//
// Returns:
//   - Split: The subsplit of the given expression for the process index
//   - error: ErrProcessContextRequired, ErrIndexOutOfRange or builder errors
//
// Example:
//
//	proc, err := process.FromEnv("JOB_COMPLETION_INDEX", "JOB_PARALLELISM")
//	if err != nil { /* handle */ }
//	split, err := datasets.SplitForProcess("train", proc)
func SplitForProcess(split string, proc types.ProcessContext, opts ...Option) (Split, error) {
	if proc == nil {
		return nil, types.ErrProcessContextRequired
	}

	index, count := proc.ProcessIndex(), proc.ProcessCount()
	if count < 1 {
		return nil, fmt.Errorf("%w: process count must be >= 1, got %d", types.ErrInvalidSplitCount, count)
	}
	if index < 0 || index >= count {
		return nil, fmt.Errorf("%w: process index %d not in [0, %d)", types.ErrIndexOutOfRange, index, count)
	}

	splits, err := EvenSplits(split, count, append([]Option{WithRemainder(RemainderDrop)}, opts...)...)
	if err != nil {
		return nil, err
	}

	return splits[index], nil
}
