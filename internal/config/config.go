// Package config defines the application configuration, its command-line
// parsing, environment overrides and validation.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/parsum/internal/errors"
	"github.com/agbru/parsum/internal/logging"
	"github.com/agbru/parsum/internal/reduce"
)

const (
	// EnvPrefix is prepended to every environment override key.
	EnvPrefix = "PARSUM_"

	// DefaultN is the length of the default input 1..N.
	DefaultN = 10
	// MaxN bounds the generated input so a typo cannot exhaust memory.
	MaxN = 1 << 26
	// DefaultTimeout is the overall deadline for all reductions.
	DefaultTimeout = time.Minute
	// AlgoAll runs every registered reducer.
	AlgoAll = "all"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// N selects the input 1..N when Values is empty.
	N int
	// Values is a comma-separated explicit input; it takes precedence over N.
	Values string
	// Transform is the element transform name.
	Transform string
	// Algo is a reducer name or "all".
	Algo string
	// Workers is the parallel worker count; zero means estimate.
	Workers int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet prints only the aggregate.
	Quiet bool
	// Verbose prints the execution header and comparison table.
	Verbose bool
	// Progress shows a spinner on the error stream.
	Progress bool
	// NoColor disables ANSI colors.
	NoColor bool
	// Metrics dumps Prometheus metrics to the error stream after the run.
	Metrics bool
	// LogLevel is the zerolog level for diagnostics.
	LogLevel string
}

// Default returns the configuration that reproduces the plain demo output.
func Default() AppConfig {
	return AppConfig{
		N:         DefaultN,
		Transform: reduce.Square.Name,
		Algo:      AlgoAll,
		Timeout:   DefaultTimeout,
		LogLevel:  "warn",
	}
}

// ParseConfig parses command-line arguments, applies environment overrides
// for flags that were not set explicitly, and validates the result.
//
// Parameters:
//   - programName: Name shown in usage output.
//   - args: Arguments without the program name.
//   - errorWriter: Destination for usage and flag errors.
//   - availableAlgos: Registered reducer names.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp for --help, a ConfigError otherwise.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	cfg := Default()
	fs.IntVar(&cfg.N, "n", cfg.N, "Sum over the sequence 1..n (0 gives the empty sequence).")
	fs.StringVar(&cfg.Values, "values", cfg.Values, "Comma-separated input values; overrides -n.")
	fs.StringVar(&cfg.Transform, "transform", cfg.Transform, fmt.Sprintf("Element transform (%s).", strings.Join(reduce.TransformNames(), ", ")))
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, fmt.Sprintf("Reducer to run: 'all' or one of %s.", strings.Join(availableAlgos, ", ")))
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel workers (0 = estimate from CPU count).")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Maximum run time (e.g. 30s, 1m).")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "Print only the aggregate value.")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "Shorthand for --quiet.")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Print configuration, timings and a comparison table.")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Shorthand for --verbose.")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "Show a progress spinner on stderr.")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output.")
	fs.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "Dump Prometheus metrics to stderr after the run.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Diagnostic log level (debug, info, warn, error).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and names.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.N < 0 || c.N > MaxN {
		return apperrors.NewConfigError("-n must be between 0 and %d, got %d", MaxN, c.N)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("--workers must be >= 0, got %d", c.Workers)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", c.Timeout)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	if _, err := reduce.TransformByName(c.Transform); err != nil {
		return apperrors.NewConfigError("--transform: %v", err)
	}
	if c.Algo != AlgoAll && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("--algo: unknown reducer %q (available: all, %s)", c.Algo, strings.Join(availableAlgos, ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("--log-level: %v", err)
	}
	if _, err := ParseValues(c.Values); err != nil {
		return apperrors.NewConfigError("--values: %v", err)
	}
	return nil
}

// Sequence builds the input sequence: the parsed Values when set, 1..N
// otherwise.
func (c AppConfig) Sequence() (reduce.Sequence, error) {
	if strings.TrimSpace(c.Values) != "" {
		return ParseValues(c.Values)
	}
	return reduce.NewRange(c.N), nil
}

// ParseValues parses a comma-separated list of int64 values. Blank input
// yields an empty sequence; blank items are rejected.
func ParseValues(s string) (reduce.Sequence, error) {
	if strings.TrimSpace(s) == "" {
		return reduce.Sequence{}, nil
	}
	parts := strings.Split(s, ",")
	seq := make(reduce.Sequence, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, apperrors.ValidationError{
				Field:   "values",
				Message: fmt.Sprintf("item %d (%q) is not a 64-bit integer", i+1, part),
			}
		}
		seq = append(seq, v)
	}
	return seq, nil
}
