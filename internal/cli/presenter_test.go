package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/metrics"
	"github.com/agbru/parsum/internal/orchestration"
	"github.com/agbru/parsum/internal/ui"
)

func init() {
	ui.SetCurrentTheme(ui.NoColorTheme)
}

func TestCLIResultPresenter_PresentSums(t *testing.T) {
	t.Parallel()
	results := []orchestration.ReductionResult{
		{Label: "Sequential", Sum: 385},
		{Label: "Parallel", Sum: 385},
		{Label: "Broken", Err: errors.New("boom")},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentSums(results, &buf)
	assert.Equal(t, "Sequential sum: 385\nParallel sum: 385\n", buf.String())
}

func TestCLIResultPresenter_PresentQuiet(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentQuiet(orchestration.ReductionResult{Sum: -12}, &buf)
	assert.Equal(t, "-12\n", buf.String())
}

func TestCLIResultPresenter_PresentComparisonTable(t *testing.T) {
	t.Parallel()
	results := []orchestration.ReductionResult{
		{Label: "Sequential", Sum: 385, Chunks: 1, Duration: 3 * time.Microsecond},
		{Label: "Parallel", Err: context.DeadlineExceeded, Duration: 2 * time.Millisecond},
	}
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(results, &buf)
	out := buf.String()

	for _, want := range []string{"Comparison Summary", "Reducer", "Duration", "Chunks", "Status", "Sequential", "Success", "Failure (context deadline exceeded)"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "     1   ")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 4)
}

func TestCLIResultPresenter_HandleError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	code := CLIResultPresenter{}.HandleError(apperrors.OverflowError{Operation: "add", A: 1, B: 2}, 0, &buf)
	assert.Equal(t, apperrors.ExitErrorOverflow, code)
	assert.Contains(t, buf.String(), "integer overflow")
}

func TestDisplayMemoryStats(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	DisplayMemoryStats(metrics.MemorySnapshot{HeapAlloc: 2048, TotalAlloc: 4096, NumGC: 3, PauseTotalNs: 1_500_000}, &buf)
	out := buf.String()
	assert.Contains(t, out, "Memory Stats:")
	assert.Contains(t, out, "GC cycles:       3")
	assert.Contains(t, out, "1.50ms")
}

func TestFormatSumLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Sequential sum: 385", FormatSumLine("Sequential", 385))
	assert.Equal(t, "0", FormatQuietResult(0))
}
