package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yukimasano/datasets/types"
)

func TestNewNop(t *testing.T) {
	m := NewNop()

	require.NotNil(t, m)
	require.IsType(t, &NopMetrics{}, m)
}

func TestNopMetrics_DoesNotPanic(t *testing.T) {
	m := NewNop()

	require.NotPanics(t, func() {
		m.RecordResolution(types.RemainderBalance, 2)
		m.RecordResolution(types.Remainder(999), -1)
		m.RecordDroppedExamples("train", 3)
		m.RecordDroppedExamples("", 0)
	})
}
