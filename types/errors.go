package types

import "errors"

// Sentinel errors for the datasets library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components should use these sentinel errors for known
// error conditions and wrap them with context using
// fmt.Errorf("...: %w", err).
var (
	// ErrInvalidSplitCount is returned when the subsplit count is out of
	// range (n < 1, or n > 100 in legacy percent mode).
	ErrInvalidSplitCount = errors.New("invalid subsplit count")

	// ErrComposedSplit is returned when legacy percent mode is requested for
	// an expression that is already windowed or concatenated. Composed
	// expressions require an explicit non-legacy remainder strategy.
	ErrComposedSplit = errors.New("legacy percent mode requires a bare split name")

	// ErrInvalidRemainder is returned for an unknown or unsupported
	// remainder strategy value.
	ErrInvalidRemainder = errors.New("invalid remainder strategy")

	// ErrIndexOutOfRange is returned when a subsplit or process index is
	// outside [0, count).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownSplit is returned when a size lookup does not know the
	// requested split name.
	ErrUnknownSplit = errors.New("unknown split")

	// ErrInvalidExpression is returned when a split expression cannot be
	// parsed.
	ErrInvalidExpression = errors.New("invalid split expression")

	// ErrInvalidRange is returned when a window resolves outside the bounds
	// of its split.
	ErrInvalidRange = errors.New("invalid range boundaries")

	// ErrLazySplitConcat is returned when concatenating lazy subsplit
	// descriptors. Resolving the combined arithmetic requires both
	// descriptors' sizes and strategies at once, which is intentionally
	// unsupported.
	ErrLazySplitConcat = errors.New("cannot concatenate lazy subsplits")

	// ErrProcessContextRequired is returned when SplitForProcess is called
	// without a process context.
	ErrProcessContextRequired = errors.New("process context is required")
)
