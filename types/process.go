package types

// ProcessContext supplies the identity of the current process within a group
// of cooperating processes.
//
// Index and count always come from the same authority. Mixing an explicit
// value for one with a default for the other is not supported: callers either
// provide both through process.NewFixed or let a provider such as
// process.FromEnv derive both.
type ProcessContext interface {
	// ProcessIndex returns the index of this process in [0, ProcessCount()).
	ProcessIndex() int

	// ProcessCount returns the total number of cooperating processes.
	ProcessCount() int
}
