package orchestration

import (
	"io"
	"sync"
	"time"
)

// ReductionResult is the outcome of one reducer run. It is the shared domain
// type between orchestration and presentation.
type ReductionResult struct {
	// Name is the registry key of the reducer (e.g. "parallel").
	Name string
	// Label is the display prefix (e.g. "Parallel").
	Label string
	// Sum is the aggregate. It is zero if Err is set.
	Sum int64
	// Chunks is the number of partial sums combined.
	Chunks int
	// Duration is the wall time of the run.
	Duration time.Duration
	// Err is any error the reducer returned.
	Err error
}

// ProgressUpdate reports the completed fraction of one reducer's work.
type ProgressUpdate struct {
	ReducerIndex int
	Value        float64
}

// ProgressReporter displays progress updates while reducers run.
//
// DisplayProgress is started in its own goroutine. It must drain
// progressChan until it is closed and then call wg.Done.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numReducers int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numReducers int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numReducers int, out io.Writer) {
	f(wg, progressChan, numReducers, out)
}

// NullProgressReporter drains the channel without output.
type NullProgressReporter struct{}

// DisplayProgress drains progressChan.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter renders reduction results.
type ResultPresenter interface {
	// PresentSums prints one "<Label> sum: <value>" line per successful
	// result, in run order.
	PresentSums(results []ReductionResult, out io.Writer)
	// PresentQuiet prints only the value of result.
	PresentQuiet(result ReductionResult, out io.Writer)
	// PresentComparisonTable prints the verbose per-reducer summary.
	PresentComparisonTable(results []ReductionResult, out io.Writer)
	ErrorHandler
}

// ErrorHandler maps a reduction error to an exit code, writing a diagnostic
// to out.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
