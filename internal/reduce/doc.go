// Package reduce implements the summation core: an immutable integer
// sequence, pure element transforms, and two reducers that compute
// sum(f(x) for x in seq). Sequential walks the sequence on the calling
// goroutine; Parallel partitions it into contiguous chunks, reduces each
// chunk on its own goroutine and combines the partial sums.
//
// Both reducers use overflow-checked int64 arithmetic. Because addition is
// associative and commutative, the two always agree on any input that does
// not overflow, however the parallel work is partitioned.
package reduce
