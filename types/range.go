package types

import "fmt"

// Unit indicates how the boundaries of a NamedRange window are expressed.
type Unit int

const (
	// UnitAbs means boundaries are absolute example offsets.
	UnitAbs Unit = iota

	// UnitPercent means boundaries are percentages of the split size,
	// in [-100, 100].
	UnitPercent
)

// String returns the string representation of the unit.
func (u Unit) String() string {
	switch u {
	case UnitAbs:
		return "abs"
	case UnitPercent:
		return "%"
	default:
		return "unknown"
	}
}

// NamedRange references a split by name with an optional relative window.
//
// A nil boundary means "from the beginning" (From) or "through the end" (To)
// of the split. Negative boundaries count back from the end of the split,
// matching slice semantics of the split-spec syntax. NamedRange values are
// produced by the expression parser and are never mutated afterwards.
type NamedRange struct {
	// Split is the split name (e.g. "train").
	Split string

	// From is the inclusive lower boundary, or nil for the split start.
	From *int64

	// To is the exclusive upper boundary, or nil for the split end.
	To *int64

	// Unit indicates whether From/To are absolute offsets or percentages.
	Unit Unit
}

// AbsoluteRange is a resolved half-open [Start, End) window into a named
// split. Invariant: 0 <= Start <= End <= total size of the split.
type AbsoluteRange struct {
	Split string
	Start int64
	End   int64
}

// NumExamples returns the number of examples covered by the range.
func (r AbsoluteRange) NumExamples() int64 {
	return r.End - r.Start
}

// String renders the range in split-spec syntax (e.g. "train[4:8]").
func (r AbsoluteRange) String() string {
	return fmt.Sprintf("%s[%d:%d]", r.Split, r.Start, r.End)
}

// SizeLookup resolves a split name to its total example count.
//
// Implementations can be backed by dataset metadata, a static table for
// testing, or any other source known before resolution. Lookups must be
// read-only during a resolution call; resolution itself performs no I/O.
type SizeLookup interface {
	// NumExamples returns the total example count of the named split.
	//
	// Parameters:
	//   - split: Split name (e.g. "train")
	//
	// Returns:
	//   - int64: Total example count (non-negative)
	//   - error: ErrUnknownSplit if the split name is not known
	NumExamples(split string) (int64, error)
}
