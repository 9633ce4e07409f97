// Package datasets provides reproducible even splitting of named dataset
// splits across parallel consumers.
//
// Given only total example counts, the library partitions a split expression
// into a fixed number of non-overlapping contiguous subsplits, so that every
// process of a distributed computation reads a disjoint, deterministic slice
// of the same data without coordinating at read time.
//
// # Quick Start
//
// Divide the train split across three readers, distributing the remainder
// evenly:
//
//	splits, err := datasets.EvenSplits("train", 3,
//	    datasets.WithRemainder(datasets.RemainderBalance))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sizes := source.NewStatic(map[string]int64{"train": 60000})
//	ranges, err := splits[0].Resolve(sizes)
//
// Each element of ranges is an absolute [start, end) window into a named
// split, ready to hand to a data reader.
//
// # Remainder strategies
//
// When the example count is not divisible by the subsplit count, the
// Remainder strategy decides where the leftover examples go: dropped
// (RemainderDrop), spread one-per-subsplit from index 0 (RemainderBalance),
// or all on subsplit 0 (RemainderOnFirst). The default RemainderLegacyPercent
// keeps the historical percentage-boundary behavior and returns textual
// expressions such as "train[0%:33%]" instead of lazy descriptors.
//
// # Distributed processes
//
// SplitForProcess selects the subsplit of the current process, with index and
// count supplied by an injected process context:
//
//	proc, err := process.FromEnv("JOB_COMPLETION_INDEX", "JOB_PARALLELISM")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	split, err := datasets.SplitForProcess("train", proc)
//
// By default examples that cannot be evenly distributed are dropped.
//
// See the examples/ directory for complete working examples.
package datasets
