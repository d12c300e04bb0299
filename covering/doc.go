// Package covering builds t-way covering arrays using the In-Parameter-Order
// General (IPOG) strategy: horizontal growth extends existing rows greedily,
// column by column, and vertical growth appends the rows needed to finish
// off whatever horizontal growth left uncovered.
//
// The package is a pure, single-threaded library: Build and Verify perform
// no I/O and take no locks, and the only external dependency is an injected
// source of randomness (see Rand).
package covering
