// Package partition implements the deterministic subsplit arithmetic.
//
// Shard computes the absolute window of one subsplit of an integer range.
// Resolve converts parsed named ranges into absolute windows using split
// sizes, and Compose combines both: it resolves every addend of an
// expression and shards each one independently, preserving expression order.
//
// All functions are pure: same inputs, same outputs, no shared state. Callers
// may invoke them concurrently without coordination.
package partition
