package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/format"
	"github.com/agbru/parsum/internal/metrics"
	"github.com/agbru/parsum/internal/orchestration"
	"github.com/agbru/parsum/internal/ui"
)

// CLIProgressReporter renders progress with a spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numReducers int, out io.Writer) {
	DisplayProgress(wg, progressChan, numReducers, out)
}

// CLIResultPresenter prints results for the terminal.
type CLIResultPresenter struct{}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentSums prints one line per successful result in run order.
func (CLIResultPresenter) PresentSums(results []orchestration.ReductionResult, out io.Writer) {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		fmt.Fprintln(out, FormatSumLine(res.Label, res.Sum))
	}
}

// PresentQuiet prints the bare aggregate.
func (CLIResultPresenter) PresentQuiet(result orchestration.ReductionResult, out io.Writer) {
	DisplayQuietResult(out, result.Sum)
}

// PresentComparisonTable prints reducer, duration, chunk count and status
// for each result. Padding is computed on the plain text so ANSI codes do not
// skew the columns.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.ReductionResult, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.HeaderStyle().Render("--- Comparison Summary ---"))

	nameW, durW := len("Reducer"), len("Duration")
	for _, res := range results {
		nameW = max(nameW, len(res.Label))
		durW = max(durW, len(format.FormatExecutionDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%sReducer%s%s   %sDuration%s%s   %sChunks%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", nameW-len("Reducer")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", durW-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%sFailure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%sSuccess%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := format.FormatExecutionDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s   %s\n",
			ui.ColorBlue(), res.Label, ui.ColorReset(), padRight("", nameW-len(res.Label)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", durW-len(duration)),
			ui.DimStyle().Render(fmt.Sprintf("%6d", res.Chunks)), status)
	}
}

// HandleError maps err to an exit code and prints a diagnostic.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleReductionError(err, duration, out)
}

func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// DisplayMemoryStats prints the allocation delta of a run.
func DisplayMemoryStats(stats metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.HeaderStyle().Render("Memory Stats:"))
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(stats.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(stats.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", stats.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(stats.PauseTotalNs)/1e6)
}
