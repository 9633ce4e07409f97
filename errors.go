package datasets

import "github.com/yukimasano/datasets/types"

// Sentinel errors re-exported from the types package so that callers can use
// errors.Is(err, datasets.ErrX) without importing the subpackage. Each alias
// shares identity with its types counterpart.
var (
	// ErrInvalidSplitCount is returned when the subsplit count is out of range.
	ErrInvalidSplitCount = types.ErrInvalidSplitCount

	// ErrComposedSplit is returned when legacy percent mode is requested for a
	// windowed or concatenated expression.
	ErrComposedSplit = types.ErrComposedSplit

	// ErrInvalidRemainder is returned for an unknown remainder strategy value.
	ErrInvalidRemainder = types.ErrInvalidRemainder

	// ErrIndexOutOfRange is returned when an index is outside [0, count).
	ErrIndexOutOfRange = types.ErrIndexOutOfRange

	// ErrUnknownSplit is returned when a size lookup misses a split name.
	ErrUnknownSplit = types.ErrUnknownSplit

	// ErrInvalidExpression is returned for malformed split expressions.
	ErrInvalidExpression = types.ErrInvalidExpression

	// ErrInvalidRange is returned when a window resolves out of bounds.
	ErrInvalidRange = types.ErrInvalidRange

	// ErrLazySplitConcat is returned when concatenating lazy subsplits.
	ErrLazySplitConcat = types.ErrLazySplitConcat

	// ErrProcessContextRequired is returned when no process context is given.
	ErrProcessContextRequired = types.ErrProcessContextRequired
)
