package partition

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yukimasano/datasets/expr"
	"github.com/yukimasano/datasets/source"
	"github.com/yukimasano/datasets/types"
)

func ptr(v int64) *int64 { return &v }

func TestResolve(t *testing.T) {
	sizes := source.NewStatic(map[string]int64{"train": 100, "test": 8})

	tests := []struct {
		name   string
		ranges []types.NamedRange
		want   []types.AbsoluteRange
	}{
		{
			name:   "full split",
			ranges: []types.NamedRange{{Split: "train", Unit: types.UnitAbs}},
			want:   []types.AbsoluteRange{{Split: "train", Start: 0, End: 100}},
		},
		{
			name:   "absolute window",
			ranges: []types.NamedRange{{Split: "train", From: ptr(4), To: ptr(8), Unit: types.UnitAbs}},
			want:   []types.AbsoluteRange{{Split: "train", Start: 4, End: 8}},
		},
		{
			name:   "open ended",
			ranges: []types.NamedRange{{Split: "train", From: ptr(90), Unit: types.UnitAbs}},
			want:   []types.AbsoluteRange{{Split: "train", Start: 90, End: 100}},
		},
		{
			name:   "zero upper boundary is valid",
			ranges: []types.NamedRange{{Split: "train", To: ptr(0), Unit: types.UnitAbs}},
			want:   []types.AbsoluteRange{{Split: "train", Start: 0, End: 0}},
		},
		{
			name:   "negative offsets count from the end",
			ranges: []types.NamedRange{{Split: "train", From: ptr(-10), Unit: types.UnitAbs}},
			want:   []types.AbsoluteRange{{Split: "train", Start: 90, End: 100}},
		},
		{
			name:   "percent window",
			ranges: []types.NamedRange{{Split: "train", From: ptr(25), To: ptr(50), Unit: types.UnitPercent}},
			want:   []types.AbsoluteRange{{Split: "train", Start: 25, End: 50}},
		},
		{
			name:   "percent rounds half to even",
			ranges: []types.NamedRange{{Split: "test", From: ptr(25), To: ptr(75), Unit: types.UnitPercent}},
			// 25% of 8 = 2, 75% of 8 = 6.
			want: []types.AbsoluteRange{{Split: "test", Start: 2, End: 6}},
		},
		{
			name: "multiple addends keep order",
			ranges: []types.NamedRange{
				{Split: "test", Unit: types.UnitAbs},
				{Split: "train", To: ptr(10), Unit: types.UnitAbs},
			},
			want: []types.AbsoluteRange{
				{Split: "test", Start: 0, End: 8},
				{Split: "train", Start: 0, End: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.ranges, sizes)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	sizes := source.NewStatic(map[string]int64{"train": 100})

	t.Run("unknown split", func(t *testing.T) {
		_, err := Resolve([]types.NamedRange{{Split: "validation"}}, sizes)
		require.True(t, errors.Is(err, types.ErrUnknownSplit), "got %v", err)
	})

	t.Run("offset beyond split size", func(t *testing.T) {
		_, err := Resolve([]types.NamedRange{{Split: "train", To: ptr(101), Unit: types.UnitAbs}}, sizes)
		require.True(t, errors.Is(err, types.ErrInvalidRange), "got %v", err)
	})

	t.Run("negative offset beyond split size", func(t *testing.T) {
		_, err := Resolve([]types.NamedRange{{Split: "train", From: ptr(-101), Unit: types.UnitAbs}}, sizes)
		require.True(t, errors.Is(err, types.ErrInvalidRange), "got %v", err)
	})

	t.Run("inverted window", func(t *testing.T) {
		_, err := Resolve([]types.NamedRange{{Split: "train", From: ptr(8), To: ptr(4), Unit: types.UnitAbs}}, sizes)
		require.True(t, errors.Is(err, types.ErrInvalidRange), "got %v", err)
	})
}

func TestCompose_MultiRange(t *testing.T) {
	// Two addends: all of "train" (10 examples) plus the back half of "test"
	// (window [4:8) of 8 examples), split into 3 with OnFirst. Each addend
	// rounds its own remainder.
	sizes := source.NewStatic(map[string]int64{"train": 10, "test": 8})
	ranges, err := expr.Parse("train+test[4:]")
	require.NoError(t, err)

	want := [][]types.AbsoluteRange{
		{{Split: "train", Start: 0, End: 4}, {Split: "test", Start: 4, End: 6}},
		{{Split: "train", Start: 4, End: 7}, {Split: "test", Start: 6, End: 7}},
		{{Split: "train", Start: 7, End: 10}, {Split: "test", Start: 7, End: 8}},
	}

	for index, w := range want {
		got, dropped, err := Compose(ranges, 3, index, types.RemainderOnFirst, sizes)
		require.NoError(t, err)
		require.Equal(t, w, got, "index %d", index)
		require.Zero(t, dropped)
	}
}

func TestCompose_ReportsDroppedAcrossAddends(t *testing.T) {
	// 10%3 leaves 1, 8%3 leaves 2: three examples dropped in total.
	sizes := source.NewStatic(map[string]int64{"train": 10, "test": 8})
	ranges, err := expr.Parse("train+test")
	require.NoError(t, err)

	got, dropped, err := Compose(ranges, 3, 0, types.RemainderDrop, sizes)
	require.NoError(t, err)
	require.Equal(t, []types.AbsoluteRange{
		{Split: "train", Start: 0, End: 3},
		{Split: "test", Start: 0, End: 2},
	}, got)
	require.Equal(t, int64(3), dropped)
}

func TestCompose_PropagatesShardErrors(t *testing.T) {
	sizes := source.NewStatic(map[string]int64{"train": 10})
	ranges := []types.NamedRange{{Split: "train"}}

	_, _, err := Compose(ranges, 3, 5, types.RemainderDrop, sizes)
	require.True(t, errors.Is(err, types.ErrIndexOutOfRange), "got %v", err)
}
