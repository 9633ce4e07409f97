package datasets

import (
	"github.com/yukimasano/datasets/internal/logger"
	"github.com/yukimasano/datasets/internal/metrics"
	"github.com/yukimasano/datasets/types"
)

// Option configures EvenSplits and SplitForProcess.
type Option func(*splitOptions)

// splitOptions holds optional split configuration.
type splitOptions struct {
	remainder *types.Remainder
	logger    types.Logger
	metrics   types.MetricsCollector
}

// newSplitOptions applies opts over the given default remainder strategy.
func newSplitOptions(defaultRemainder types.Remainder, opts ...Option) splitOptions {
	o := splitOptions{
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.remainder == nil {
		o.remainder = &defaultRemainder
	}

	return o
}

// WithRemainder sets the remainder strategy.
//
// EvenSplits defaults to RemainderLegacyPercent; SplitForProcess defaults to
// RemainderDrop.
//
// Parameters:
//   - remainder: Remainder strategy to apply to every addend and index
//
// Returns:
//   - Option: Functional option for EvenSplits / SplitForProcess
//
// Example:
//
//	splits, err := datasets.EvenSplits("train", 8,
//	    datasets.WithRemainder(datasets.RemainderBalance))
func WithRemainder(remainder Remainder) Option {
	return func(o *splitOptions) {
		o.remainder = &remainder
	}
}

// WithLogger sets a logger.
//
// The logger receives the warning emitted when RemainderDrop discards
// examples during resolution. Defaults to a no-op logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for EvenSplits / SplitForProcess
//
// Example:
//
//	splits, err := datasets.EvenSplits("train", 8,
//	    datasets.WithRemainder(datasets.RemainderDrop),
//	    datasets.WithLogger(logging.NewSlogDefault()))
func WithLogger(logger Logger) Option {
	return func(o *splitOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// The collector observes every lazy resolution and any dropped examples.
// Defaults to a no-op collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for EvenSplits / SplitForProcess
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "datasets")
//	splits, err := datasets.EvenSplits("train", 8,
//	    datasets.WithRemainder(datasets.RemainderDrop),
//	    datasets.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *splitOptions) {
		o.metrics = metrics
	}
}
