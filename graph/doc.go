// Package graph provides the in-memory directed graph that conversion
// accumulates into: a multigraph variant that keeps every edge between a
// node pair, and a simple variant that keeps only the last. Both share
// last-write-wins node semantics and deterministic insertion-order
// enumeration. The package holds no STIX knowledge; the converter is
// the only writer and never reads back during a pass.
package graph
