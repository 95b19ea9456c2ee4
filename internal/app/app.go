// Package app wires configuration, reducers, orchestration and presentation
// into the parsum command.
package app

import (
	"errors"
	"flag"
	"io"

	"github.com/google/uuid"

	"github.com/agbru/parsum/internal/config"
	"github.com/agbru/parsum/internal/logging"
	"github.com/agbru/parsum/internal/reduce"
	"github.com/agbru/parsum/internal/ui"
)

// Application represents the parsum application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *reduce.Registry
	ErrWriter io.Writer
	Logger    logging.Logger
	// RunID tags every log line of this invocation.
	RunID string
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry replaces the default reducer registry.
func WithRegistry(r *reduce.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithLogger replaces the console logger built from --log-level.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New parses args (program name first) and builds an Application.
// Usage and configuration errors are written to errWriter.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, RunID: uuid.NewString()}
	for _, opt := range opts {
		opt(app)
	}

	availableAlgos := reduce.NewDefaultRegistry(0).List()
	if app.Registry != nil {
		availableAlgos = app.Registry.List()
	}

	programName := "parsum"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}
	cfg = config.ApplyAdaptiveWorkers(cfg)
	app.Config = cfg

	if app.Registry == nil {
		app.Registry = reduce.NewDefaultRegistry(cfg.Workers)
	}
	ui.InitTheme(cfg.NoColor)
	if app.Logger == nil {
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		app.Logger = logging.NewConsoleLogger(errWriter, "parsum", level, !ui.ColorsEnabled()).
			With(logging.String("run_id", app.RunID))
	}
	return app, nil
}

// IsHelpError reports whether err comes from -h/--help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
