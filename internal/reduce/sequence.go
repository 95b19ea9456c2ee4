package reduce

// Sequence is the read-only input of a reduction. Reducers never mutate it,
// so it is shared across worker goroutines without copying or locking.
type Sequence []int64

// NewRange returns the sequence 1, 2, ..., n. It returns an empty sequence
// for n <= 0.
func NewRange(n int) Sequence {
	if n <= 0 {
		return Sequence{}
	}
	seq := make(Sequence, n)
	for i := range seq {
		seq[i] = int64(i + 1)
	}
	return seq
}

// DefaultSequence is the ten-element input used when nothing else is chosen.
func DefaultSequence() Sequence {
	return NewRange(10)
}
