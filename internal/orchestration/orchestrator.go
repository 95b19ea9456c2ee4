package orchestration

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/logging"
	"github.com/agbru/parsum/internal/metrics"
	"github.com/agbru/parsum/internal/reduce"
	"github.com/agbru/parsum/internal/telemetry"
)

// ProgressBufferMultiplier sizes the progress channel relative to the number
// of reducers.
const ProgressBufferMultiplier = 8

// ExecutionOptions carries the optional collaborators of ExecuteReductions.
// Nil fields are skipped.
type ExecutionOptions struct {
	Recorder *metrics.Recorder
	Logger   logging.Logger
}

// ExecuteReductions runs each reducer over seq, one after another, in the
// order given. Every reducer sees the same read-only input. Progress is
// forwarded to reporter until all reducers have finished.
//
// The returned slice has one entry per reducer, in the same order.
func ExecuteReductions(ctx context.Context, reducers []reduce.Reducer, seq reduce.Sequence, tf reduce.Transform, opts ExecutionOptions, reporter ProgressReporter, out io.Writer) []ReductionResult {
	if reporter == nil {
		reporter = NullProgressReporter{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	ctx, span := telemetry.StartSpan(ctx, "orchestration.execute",
		telemetry.KeyElements.Int(len(seq)))
	defer span.End()

	results := make([]ReductionResult, len(reducers))
	progressChan := make(chan ProgressUpdate, len(reducers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(reducers), out)

	for i, r := range reducers {
		idx := i
		report := func(done, total int) {
			if total <= 0 {
				return
			}
			select {
			case progressChan <- ProgressUpdate{ReducerIndex: idx, Value: float64(done) / float64(total)}:
			case <-ctx.Done():
			}
		}

		logger.Debug("reduction started",
			logging.String("reducer", r.Name()), logging.Int("elements", len(seq)))
		start := time.Now()
		res, err := r.Reduce(ctx, seq, tf, report)
		elapsed := time.Since(start)

		results[idx] = ReductionResult{
			Name:     r.Name(),
			Label:    r.Label(),
			Sum:      res.Sum,
			Chunks:   res.Chunks,
			Duration: elapsed,
			Err:      err,
		}
		opts.Recorder.ObserveReduction(r.Name(), len(seq), res.Sum, res.Chunks, elapsed, err)
		if err != nil {
			logger.Debug("reduction failed",
				logging.String("reducer", r.Name()),
				logging.Duration("duration", elapsed),
				logging.Err(err))
			continue
		}
		logger.Debug("reduction finished",
			logging.String("reducer", r.Name()),
			logging.Int64("sum", res.Sum),
			logging.Int("chunks", res.Chunks),
			logging.Duration("duration", elapsed))
	}

	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalysisOptions controls how AnalyzeComparisonResults reports.
type AnalysisOptions struct {
	Quiet    bool
	Verbose  bool
	Recorder *metrics.Recorder
	// ErrWriter receives diagnostics. Defaults to out.
	ErrWriter io.Writer
}

// AnalyzeComparisonResults prints the results and returns the exit code.
//
// Successful results are printed in run order. All successful results must
// agree, otherwise ExitErrorMismatch is returned. If any reducer failed, the
// exit code comes from the presenter's error handler for the first failure.
func AnalyzeComparisonResults(results []ReductionResult, opts AnalysisOptions, presenter ResultPresenter, out io.Writer) int {
	errOut := opts.ErrWriter
	if errOut == nil {
		errOut = out
	}

	var firstValid *ReductionResult
	var firstFailure *ReductionResult
	for i := range results {
		if results[i].Err != nil {
			if firstFailure == nil {
				firstFailure = &results[i]
			}
			continue
		}
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	if opts.Quiet {
		if firstValid != nil {
			presenter.PresentQuiet(*firstValid, out)
		}
	} else {
		presenter.PresentSums(results, out)
	}

	mismatch := false
	if firstValid != nil {
		for _, res := range results {
			if res.Err == nil && res.Sum != firstValid.Sum {
				mismatch = true
				break
			}
		}
	}

	if opts.Verbose {
		presenter.PresentComparisonTable(results, out)
		switch {
		case mismatch:
			fmt.Fprintln(out, "\nGlobal status: CRITICAL ERROR. The reducers disagree.")
		case firstValid == nil:
			fmt.Fprintln(out, "\nGlobal status: Failure. No reducer completed.")
		case firstFailure != nil:
			fmt.Fprintln(out, "\nGlobal status: Partial failure. Completed results are consistent.")
		default:
			fmt.Fprintln(out, "\nGlobal status: Success. All results are consistent.")
		}
	}

	if mismatch {
		opts.Recorder.ObserveMismatch()
		fmt.Fprintf(errOut, "Error: results disagree (%s: %d", firstValid.Label, firstValid.Sum)
		for _, res := range results {
			if res.Err == nil && res.Sum != firstValid.Sum {
				fmt.Fprintf(errOut, ", %s: %d", res.Label, res.Sum)
			}
		}
		fmt.Fprintln(errOut, ")")
		return apperrors.ExitErrorMismatch
	}
	if firstFailure != nil {
		return presenter.HandleError(firstFailure.Err, firstFailure.Duration, errOut)
	}
	return apperrors.ExitSuccess
}
