package types

// Remainder selects how examples left over by an uneven division are
// distributed across subsplits.
//
// For a split of N examples divided into C subsplits, each subsplit receives a
// baseline of N/C examples and R = N%C examples remain. The strategies assign
// those R examples as follows:
//
//	RemainderLegacyPercent: percentage-boundary splitting kept for backward
//	compatibility; subsplit sizes may drift by an example per boundary.
//	RemainderDrop: the R trailing examples are read by no subsplit.
//	RemainderBalance: subsplits 0..R-1 each receive one extra example.
//	RemainderOnFirst: subsplit 0 receives all R extra examples.
type Remainder int

const (
	// RemainderLegacyPercent is the legacy percentage-based split strategy.
	// Subsplits are expressed as "name[P%:Q%]" and might not contain the
	// exact same number of examples.
	RemainderLegacyPercent Remainder = iota

	// RemainderDrop discards examples not divisible by the subsplit count.
	// Every subsplit receives the same number of examples.
	RemainderDrop

	// RemainderBalance distributes leftover examples evenly across the
	// first subsplits.
	RemainderBalance

	// RemainderOnFirst assigns all leftover examples to subsplit 0.
	RemainderOnFirst
)

// String returns the string representation of the remainder strategy.
func (r Remainder) String() string {
	switch r {
	case RemainderLegacyPercent:
		return "LegacyPercent"
	case RemainderDrop:
		return "Drop"
	case RemainderBalance:
		return "Balance"
	case RemainderOnFirst:
		return "OnFirst"
	default:
		return "Unknown"
	}
}

// Valid reports whether r is one of the defined remainder strategies.
func (r Remainder) Valid() bool {
	switch r {
	case RemainderLegacyPercent, RemainderDrop, RemainderBalance, RemainderOnFirst:
		return true
	default:
		return false
	}
}
