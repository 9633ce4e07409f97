package datasets

import "github.com/yukimasano/datasets/types"

// Re-export types from the internal types package.
//
// This file provides a stable, convenient public API for the library's core
// types and interfaces. It uses type aliases to re-export definitions from
// the `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `datasets`
// package, while still providing `datasets.Remainder`, `datasets.Logger`,
// etc. for users.
type (
	Remainder     = types.Remainder
	NamedRange    = types.NamedRange
	AbsoluteRange = types.AbsoluteRange
)

// Re-export interfaces from the internal types package for convenience.
type (
	SizeLookup       = types.SizeLookup
	ProcessContext   = types.ProcessContext
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)

// Re-export Remainder constants from the internal types package.
const (
	RemainderLegacyPercent = types.RemainderLegacyPercent
	RemainderDrop          = types.RemainderDrop
	RemainderBalance       = types.RemainderBalance
	RemainderOnFirst       = types.RemainderOnFirst
)
