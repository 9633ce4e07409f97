package datasets

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yukimasano/datasets/process"
	"github.com/yukimasano/datasets/source"
	"github.com/yukimasano/datasets/types"
)

func TestSplitForProcess_SingleProcessReadsEverything(t *testing.T) {
	sizes := source.NewStatic(map[string]int64{"train": 60000})
	proc, err := process.NewFixed(0, 1)
	require.NoError(t, err)

	split, err := SplitForProcess("train", proc)
	require.NoError(t, err)

	got, err := split.Resolve(sizes)
	require.NoError(t, err)
	require.Equal(t, []types.AbsoluteRange{{Split: "train", Start: 0, End: 60000}}, got)
}

func TestSplitForProcess_DefaultsToDrop(t *testing.T) {
	sizes := source.NewStatic(map[string]int64{"train": 9})

	want := [][2]int64{{0, 4}, {4, 8}}
	for index, w := range want {
		proc, err := process.NewFixed(index, 2)
		require.NoError(t, err)

		split, err := SplitForProcess("train", proc)
		require.NoError(t, err)

		got, err := split.Resolve(sizes)
		require.NoError(t, err)
		require.Equal(t, []types.AbsoluteRange{
			{Split: "train", Start: w[0], End: w[1]},
		}, got, "index %d", index)
	}
}

func TestSplitForProcess_RemainderOverride(t *testing.T) {
	sizes := source.NewStatic(map[string]int64{"train": 9})
	proc, err := process.NewFixed(1, 2)
	require.NoError(t, err)

	split, err := SplitForProcess("train", proc, WithRemainder(RemainderBalance))
	require.NoError(t, err)

	got, err := split.Resolve(sizes)
	require.NoError(t, err)
	require.Equal(t, []types.AbsoluteRange{{Split: "train", Start: 5, End: 9}}, got)
}

func TestSplitForProcess_LegacyPercent(t *testing.T) {
	proc, err := process.NewFixed(1, 4)
	require.NoError(t, err)

	split, err := SplitForProcess("train", proc, WithRemainder(RemainderLegacyPercent))
	require.NoError(t, err)
	require.Equal(t, Expression("train[25%:50%]"), split)
}

func TestSplitForProcess_ComposedExpression(t *testing.T) {
	sizes := source.NewStatic(map[string]int64{"train": 800, "validation": 100})
	proc, err := process.NewFixed(0, 2)
	require.NoError(t, err)

	split, err := SplitForProcess("train[:800]+validation[:100]", proc)
	require.NoError(t, err)

	got, err := split.Resolve(sizes)
	require.NoError(t, err)
	require.Equal(t, []types.AbsoluteRange{
		{Split: "train", Start: 0, End: 400},
		{Split: "validation", Start: 0, End: 50},
	}, got)
}

func TestSplitForProcess_NilContext(t *testing.T) {
	_, err := SplitForProcess("train", nil)
	require.True(t, errors.Is(err, ErrProcessContextRequired), "got %v", err)
}

type badContext struct{ index, count int }

func (b badContext) ProcessIndex() int { return b.index }
func (b badContext) ProcessCount() int { return b.count }

func TestSplitForProcess_InvalidContextValues(t *testing.T) {
	t.Run("count below one", func(t *testing.T) {
		_, err := SplitForProcess("train", badContext{index: 0, count: 0})
		require.True(t, errors.Is(err, types.ErrInvalidSplitCount), "got %v", err)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := SplitForProcess("train", badContext{index: 5, count: 2})
		require.True(t, errors.Is(err, types.ErrIndexOutOfRange), "got %v", err)
	})
}
