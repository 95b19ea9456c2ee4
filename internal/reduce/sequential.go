package reduce

import (
	"context"

	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/telemetry"
)

// Sequential reduces left to right on the calling goroutine.
type Sequential struct{}

// Name returns "sequential".
func (Sequential) Name() string { return "sequential" }

// Label returns "Sequential".
func (Sequential) Label() string { return "Sequential" }

// Reduce folds the sequence in order starting from 0.
func (s Sequential) Reduce(ctx context.Context, seq Sequence, tf Transform, report ProgressCallback) (res Result, err error) {
	ctx, span := telemetry.StartSpan(ctx, "reduce.sequential",
		telemetry.KeyReducer.String(s.Name()), telemetry.KeyElements.Int(len(seq)))
	defer func() { telemetry.EndSpan(span, err) }()

	if len(seq) == 0 {
		if err := ctx.Err(); err != nil {
			return Result{}, apperrors.ReductionError{Reducer: s.Name(), Cause: err}
		}
		return Result{}, nil
	}

	sum, err := sumSlice(ctx, seq, tf)
	if err != nil {
		return Result{}, apperrors.ReductionError{Reducer: s.Name(), Cause: err}
	}
	if report != nil {
		report(1, 1)
	}
	span.SetAttributes(telemetry.KeySum.Int64(sum))
	return Result{Sum: sum, Chunks: 1}, nil
}
