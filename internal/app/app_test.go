package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/logging"
	"github.com/agbru/parsum/internal/orchestration"
	"github.com/agbru/parsum/internal/reduce"
)

func run(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	application, err := New(append([]string{"parsum"}, args...), &errOut)
	require.NoError(t, err)
	code = application.Run(context.Background(), &out)
	return out.String(), errOut.String(), code
}

func TestRun_Default(t *testing.T) {
	stdout, stderr, code := run(t)
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, "Sequential sum: 385\nParallel sum: 385\n", stdout)
	assert.Empty(t, stderr)
}

func TestRun_Idempotent(t *testing.T) {
	first, _, _ := run(t)
	second, _, _ := run(t)
	assert.Equal(t, first, second)
}

func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode int
	}{
		{"identity 1..3", []string{"-n", "3", "--transform", "identity"}, "Sequential sum: 6\nParallel sum: 6\n", 0},
		{"empty input", []string{"-n", "0"}, "Sequential sum: 0\nParallel sum: 0\n", 0},
		{"explicit values", []string{"--values", "1,2,3"}, "Sequential sum: 14\nParallel sum: 14\n", 0},
		{"quiet", []string{"-q"}, "385\n", 0},
		{"parallel only", []string{"--algo", "parallel", "--workers", "3"}, "Parallel sum: 385\n", 0},
		{"overflow", []string{"--values", "9223372036854775807,1", "--transform", "identity"}, "", apperrors.ExitErrorOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, code := run(t, tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantOut, stdout)
		})
	}
}

func TestRun_OverflowDiagnostic(t *testing.T) {
	_, stderr, code := run(t, "--values", "9223372036854775807,1", "--transform", "identity")
	assert.Equal(t, apperrors.ExitErrorOverflow, code)
	assert.Contains(t, stderr, "integer overflow")
}

func TestRun_Verbose(t *testing.T) {
	stdout, _, code := run(t, "-v", "--no-color")
	assert.Equal(t, apperrors.ExitSuccess, code)
	for _, want := range []string{
		"Execution Configuration",
		"Host load: CPU ",
		"Sequential sum: 385",
		"Parallel sum: 385",
		"Comparison Summary",
		"Global status: Success",
		"Memory Stats:",
	} {
		assert.Contains(t, stdout, want)
	}
}

func TestRun_Metrics(t *testing.T) {
	stdout, stderr, code := run(t, "--metrics")
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, "Sequential sum: 385\nParallel sum: 385\n", stdout)
	assert.Contains(t, stderr, `parsum_reductions_total{reducer="parallel",status="success"} 1`)
	assert.Contains(t, stderr, `parsum_last_sum{reducer="sequential"} 385`)
}

func TestRun_DebugLogsCarryRunID(t *testing.T) {
	_, stderr, code := run(t, "--log-level", "debug", "--no-color")
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, stderr, "run started")
	assert.Contains(t, stderr, "run_id=")
}

func TestRun_CanceledContext(t *testing.T) {
	var out, errOut bytes.Buffer
	application, err := New([]string{"parsum", "-n", "100000"}, &errOut, WithLogger(logging.Nop()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	code := application.Run(ctx, &out)
	assert.Equal(t, apperrors.ExitErrorCanceled, code)
	assert.Empty(t, out.String())
}

func TestRun_TimeoutReportsLimit(t *testing.T) {
	var out, errOut bytes.Buffer
	application, err := New([]string{"parsum", "--timeout", "2s"}, &errOut, WithLogger(logging.Nop()))
	require.NoError(t, err)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	code := application.Run(ctx, &out)

	assert.Equal(t, apperrors.ExitErrorTimeout, code)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), `operation "sequential" timed out after 2s`)
}

func TestMarkTimeouts(t *testing.T) {
	t.Parallel()
	deadline := apperrors.ReductionError{Reducer: "parallel", Cause: context.DeadlineExceeded}
	already := apperrors.TimeoutError{Operation: "x", Limit: time.Hour, Cause: context.DeadlineExceeded}
	results := []orchestration.ReductionResult{
		{Name: "sequential", Sum: 385},
		{Name: "parallel", Err: deadline},
		{Name: "canceled", Err: context.Canceled},
		{Name: "typed", Err: already},
	}

	markTimeouts(results, 3*time.Second)

	assert.NoError(t, results[0].Err)

	var timeoutErr apperrors.TimeoutError
	require.ErrorAs(t, results[1].Err, &timeoutErr)
	assert.Equal(t, "parallel", timeoutErr.Operation)
	assert.Equal(t, 3*time.Second, timeoutErr.Limit)
	assert.ErrorIs(t, results[1].Err, context.DeadlineExceeded)

	assert.Equal(t, context.Canceled, results[2].Err)
	assert.Equal(t, already, results[3].Err)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--bogus"}},
		{"bad algo", []string{"--algo", "magic"}},
		{"bad transform", []string{"--transform", "sqrt"}},
		{"negative n", []string{"-n", "-1"}},
		{"quiet and verbose", []string{"-q", "-v"}},
		{"positional", []string{"extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errOut bytes.Buffer
			_, err := New(append([]string{"parsum"}, tt.args...), &errOut)
			require.Error(t, err)
			assert.False(t, IsHelpError(err))
		})
	}
}

func TestNew_Help(t *testing.T) {
	var errOut bytes.Buffer
	_, err := New([]string{"parsum", "-h"}, &errOut)
	require.Error(t, err)
	assert.True(t, IsHelpError(err))
	assert.Contains(t, strings.ToLower(errOut.String()), "usage")
}

func TestNew_WithRegistry(t *testing.T) {
	reg := reduce.NewRegistry()
	reg.Register(reduce.Sequential{})

	var out, errOut bytes.Buffer
	application, err := New([]string{"parsum"}, &errOut, WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, []string{"sequential"}, application.Registry.List())
	assert.NotEmpty(t, application.RunID)

	code := application.Run(context.Background(), &out)
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, "Sequential sum: 385\n", out.String())
}

func TestNew_AdaptiveWorkers(t *testing.T) {
	var errOut bytes.Buffer
	application, err := New([]string{"parsum"}, &errOut)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, application.Config.Workers, 1)
}

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	assert.True(t, HasVersionFlag([]string{"--version"}))
	assert.True(t, HasVersionFlag([]string{"-n", "3", "-V"}))
	assert.False(t, HasVersionFlag([]string{"-n", "3"}))
	assert.False(t, HasVersionFlag([]string{"--", "--version"}))
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), "parsum "+Version))
}
