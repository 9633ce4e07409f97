package types

// MetricsCollector defines methods for recording resolution metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Resolutions may run concurrently, so all methods must be thread-safe.
type MetricsCollector interface {
	// RecordResolution records a completed subsplit resolution.
	//
	// Parameters:
	//   - remainder: Remainder strategy used for the resolution
	//   - ranges: Number of absolute ranges in the resolved subsplit
	RecordResolution(remainder Remainder, ranges int)

	// RecordDroppedExamples records examples discarded by RemainderDrop.
	//
	// Parameters:
	//   - split: Split name the examples were dropped from
	//   - dropped: Number of discarded examples
	RecordDroppedExamples(split string, dropped int64)
}
