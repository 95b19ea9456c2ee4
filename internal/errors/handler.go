package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// HandleReductionError writes a diagnostic for err to out and maps it to an
// exit code. A nil error maps to ExitSuccess and writes nothing.
//
// Parameters:
//   - err: The error returned by a reducer (possibly wrapped).
//   - duration: How long the failing reduction ran; zero hides it.
//   - out: Where the diagnostic goes, usually stderr.
//
// Returns:
//   - int: The exit code for the process.
func HandleReductionError(err error, duration time.Duration, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}

	suffix := ""
	if duration > 0 {
		suffix = fmt.Sprintf(" (after %s)", duration)
	}

	var configErr ConfigError
	switch {
	case errors.As(err, &configErr):
		fmt.Fprintf(out, "Configuration error: %v\n", err)
		return ExitErrorConfig
	case IsOverflow(err):
		fmt.Fprintf(out, "Error: %v%s\n", err, suffix)
		return ExitErrorOverflow
	case IsContextError(err) || errors.As(err, new(TimeoutError)):
		return handleContextError(err, suffix, out)
	default:
		fmt.Fprintf(out, "Error: %v%s\n", err, suffix)
		return ExitErrorGeneric
	}
}

func handleContextError(err error, suffix string, out io.Writer) int {
	var timeoutErr TimeoutError
	switch {
	case errors.As(err, &timeoutErr):
		fmt.Fprintf(out, "Error: %v%s\n", timeoutErr, suffix)
		return ExitErrorTimeout
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "Error: reduction timed out%s: %v\n", suffix, err)
		return ExitErrorTimeout
	default:
		fmt.Fprintf(out, "Reduction canceled%s.\n", suffix)
		return ExitErrorCanceled
	}
}
