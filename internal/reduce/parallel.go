package reduce

import (
	"context"
	"runtime"
	"sync/atomic"

	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/parallel"
	"github.com/agbru/parsum/internal/telemetry"
)

// Parallel splits the sequence into contiguous chunks, reduces each chunk on
// its own goroutine and combines the partial sums.
type Parallel struct {
	// Workers bounds both the number of chunks and the goroutines in flight.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
}

// NewParallel returns a parallel reducer using the given worker count.
func NewParallel(workers int) *Parallel {
	return &Parallel{Workers: workers}
}

// Name returns "parallel".
func (*Parallel) Name() string { return "parallel" }

// Label returns "Parallel".
func (*Parallel) Label() string { return "Parallel" }

// EffectiveWorkers resolves the configured worker count.
func (p *Parallel) EffectiveWorkers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Reduce partitions seq into at most EffectiveWorkers chunks, sums each one
// independently and combines the partials. The input is only read, and each
// worker writes to its own slot of the partials slice, so no locking is
// needed. The call returns once every worker has finished.
func (p *Parallel) Reduce(ctx context.Context, seq Sequence, tf Transform, report ProgressCallback) (res Result, err error) {
	workers := p.EffectiveWorkers()
	ctx, span := telemetry.StartSpan(ctx, "reduce.parallel",
		telemetry.KeyReducer.String(p.Name()), telemetry.KeyElements.Int(len(seq)))
	defer func() { telemetry.EndSpan(span, err) }()

	ranges := parallel.Partition(len(seq), workers)
	span.SetAttributes(telemetry.KeyChunks.Int(len(ranges)))
	if len(ranges) == 0 {
		if err := ctx.Err(); err != nil {
			return Result{}, apperrors.ReductionError{Reducer: p.Name(), Cause: err}
		}
		return Result{}, nil
	}

	partials := make([]int64, len(ranges))
	var done atomic.Int64
	err = parallel.ForEach(ctx, ranges, workers, func(ctx context.Context, idx int, r parallel.Range) (chunkErr error) {
		ctx, chunkSpan := telemetry.StartSpan(ctx, "reduce.chunk",
			telemetry.KeyChunk.Int(idx), telemetry.KeyElements.Int(r.Len()))
		defer func() { telemetry.EndSpan(chunkSpan, chunkErr) }()

		sum, err := sumSlice(ctx, seq[r.Start:r.End], tf)
		if err != nil {
			return err
		}
		partials[idx] = sum
		if report != nil {
			report(int(done.Add(1)), len(ranges))
		}
		return nil
	})
	if err != nil {
		return Result{}, apperrors.ReductionError{Reducer: p.Name(), Cause: err}
	}

	var total int64
	for _, partial := range partials {
		if total, err = addChecked(total, partial); err != nil {
			return Result{}, apperrors.ReductionError{Reducer: p.Name(), Cause: err}
		}
	}
	span.SetAttributes(telemetry.KeySum.Int64(total))
	return Result{Sum: total, Chunks: len(ranges)}, nil
}
