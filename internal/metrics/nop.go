// Package metrics provides MetricsCollector implementations for the datasets
// library.
package metrics

import "github.com/yukimasano/datasets/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordResolution discards the resolution metric.
func (n *NopMetrics) RecordResolution(_ /* remainder */ types.Remainder, _ /* ranges */ int) {
	// No-op
}

// RecordDroppedExamples discards the dropped examples metric.
func (n *NopMetrics) RecordDroppedExamples(_ /* split */ string, _ /* dropped */ int64) {
	// No-op
}
