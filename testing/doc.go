// Package testing provides helpers for tests of code that uses the datasets
// library: a logger that writes to *testing.T, and a recording logger for
// asserting emitted warnings.
package testing
