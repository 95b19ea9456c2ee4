//go:generate mockgen -source=reducer.go -destination=mocks/mock_reducer.go -package=mocks

package reduce

import (
	"context"
)

// ProgressCallback receives the number of completed work units out of total.
// It may be called from several goroutines at once and must be cheap.
type ProgressCallback func(done, total int)

// Result is the outcome of one reduction.
type Result struct {
	// Sum is the aggregate sum(f(x)).
	Sum int64
	// Chunks is the number of independent partial sums that were combined.
	// The sequential reducer always reports 1 for non-empty input.
	Chunks int
}

// Reducer computes sum(tf(x) for x in seq).
//
// Implementations return an apperrors.ReductionError wrapping the cause on
// failure: an apperrors.OverflowError, a context error, or a recovered
// worker panic. Empty input yields a zero Result and no error.
type Reducer interface {
	// Name is the registry key, e.g. "parallel".
	Name() string
	// Label is the human-readable prefix used in output, e.g. "Parallel".
	Label() string
	// Reduce blocks until the aggregate is known or the context ends.
	Reduce(ctx context.Context, seq Sequence, tf Transform, report ProgressCallback) (Result, error)
}

// sumSlice reduces part on the calling goroutine, checking ctx every
// cancelCheckInterval elements.
func sumSlice(ctx context.Context, part Sequence, tf Transform) (int64, error) {
	var acc int64
	for i, x := range part {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		y, err := tf.Apply(x)
		if err != nil {
			return 0, err
		}
		if acc, err = addChecked(acc, y); err != nil {
			return 0, err
		}
	}
	return acc, nil
}

// cancelCheckInterval bounds how many elements are processed between
// context checks.
const cancelCheckInterval = 1024
