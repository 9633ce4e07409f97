// Package source provides size lookup implementations.
//
// A size lookup resolves split names to total example counts and is the only
// external input a lazy subsplit needs at resolution time. The Static lookup
// serves a fixed in-memory table; applications with richer metadata (catalog
// services, dataset info files) implement types.SizeLookup directly.
package source
