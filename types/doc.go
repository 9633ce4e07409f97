// Package types provides core type definitions and interfaces for the
// datasets library.
//
// This package contains shared types that are used across multiple packages
// in the library. By keeping these types in a separate package, we avoid
// import cycles between the main datasets package and its internal
// implementations.
//
// Key types:
//   - Remainder: Strategy for distributing leftover examples across subsplits
//   - NamedRange: Parsed reference to a split with an optional window
//   - AbsoluteRange: Resolved half-open [start, end) window into a split
//   - SizeLookup: Injected split-name to example-count lookup
//   - ProcessContext: Injected (process index, process count) authority
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
