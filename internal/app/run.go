package app

import (
	"context"
	"errors"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/parsum/internal/cli"
	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/logging"
	"github.com/agbru/parsum/internal/metrics"
	"github.com/agbru/parsum/internal/orchestration"
	"github.com/agbru/parsum/internal/reduce"
	"github.com/agbru/parsum/internal/sysmon"
)

// Run executes the configured reducers and returns the process exit code.
// Results go to out; diagnostics, progress and metrics go to ErrWriter.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	logger := a.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	seq, err := a.Config.Sequence()
	if err != nil {
		return apperrors.HandleReductionError(apperrors.ConfigError{Message: err.Error()}, 0, a.ErrWriter)
	}
	tf, err := reduce.TransformByName(a.Config.Transform)
	if err != nil {
		return apperrors.HandleReductionError(apperrors.ConfigError{Message: err.Error()}, 0, a.ErrWriter)
	}
	reducers := orchestration.GetReducersToRun(a.Config.Algo, a.Registry)
	if len(reducers) == 0 {
		return apperrors.HandleReductionError(apperrors.NewConfigError("no reducer matches %q", a.Config.Algo), 0, a.ErrWriter)
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	if a.Config.Verbose {
		cli.PrintExecutionConfig(a.Config, seq, sysmon.Host(ctx), out)
		cli.PrintExecutionMode(reducers, out)
	}

	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	if a.Config.Progress && !a.Config.Quiet {
		reporter = cli.CLIProgressReporter{}
	}

	var recorder *metrics.Recorder
	if a.Config.Metrics {
		recorder = metrics.NewRecorder()
	}

	logger.Info("run started",
		logging.Int("elements", len(seq)),
		logging.String("transform", tf.Name),
		logging.String("algo", a.Config.Algo),
		logging.Int("workers", a.Config.Workers))

	memory := metrics.NewMemoryCollector()
	before := memory.Snapshot()

	results := orchestration.ExecuteReductions(ctx, reducers, seq, tf,
		orchestration.ExecutionOptions{Recorder: recorder, Logger: logger},
		reporter, a.ErrWriter)
	markTimeouts(results, a.Config.Timeout)

	code := orchestration.AnalyzeComparisonResults(results, orchestration.AnalysisOptions{
		Quiet:     a.Config.Quiet,
		Verbose:   a.Config.Verbose,
		Recorder:  recorder,
		ErrWriter: a.ErrWriter,
	}, cli.CLIResultPresenter{}, out)

	if a.Config.Verbose {
		cli.DisplayMemoryStats(memory.Snapshot().Since(before), out)
	}
	if recorder != nil {
		if err := recorder.WriteText(a.ErrWriter); err != nil {
			logger.Error("metrics dump failed", err)
		}
	}

	logger.Info("run finished", logging.Int("exit_code", code))
	return code
}

// markTimeouts turns deadline failures into TimeoutErrors carrying the
// configured limit.
func markTimeouts(results []orchestration.ReductionResult, limit time.Duration) {
	for i := range results {
		err := results[i].Err
		if err == nil || !errors.Is(err, context.DeadlineExceeded) {
			continue
		}
		var timeoutErr apperrors.TimeoutError
		if errors.As(err, &timeoutErr) {
			continue
		}
		results[i].Err = apperrors.TimeoutError{Operation: results[i].Name, Limit: limit, Cause: err}
	}
}
