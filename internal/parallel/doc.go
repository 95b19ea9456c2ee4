// Package parallel holds the fan-out primitives shared by the parallel
// reducer: splitting an index space into balanced contiguous ranges and
// running one bounded task per range until the first failure.
package parallel
