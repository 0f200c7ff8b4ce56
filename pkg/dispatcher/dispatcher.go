// Package dispatcher routes a resolved configuration to one of the
// helper operations. It is the entry point from the CLI layer: the
// switch over operation types is closed, so adding an operation is a
// compile-time change, not a runtime string match.
package dispatcher

import (
	"context"

	"github.com/arthur-debert/chefops/pkg/config"
	"github.com/arthur-debert/chefops/pkg/errors"
	"github.com/arthur-debert/chefops/pkg/logging"
	"github.com/arthur-debert/chefops/pkg/operations"
	"github.com/arthur-debert/chefops/pkg/types"
)

// Options contains everything one dispatcher run needs.
type Options struct {
	Config   *config.Config
	FS       types.FS
	Runner   types.Runner
	Recorder operations.Recorder
	Env      types.Env
	Reporter types.Reporter
}

// Result describes a finished run.
type Result struct {
	// Operation is the operation that ran
	Operation operations.Type

	// Commands are the external commands issued, in order
	Commands []string
}

// Dispatch executes the named operation. The recorder is reset before
// anything else so prior runs never leak into this one. Every fatal
// condition is reported through the reporter exactly once and also
// returned as an error.
func Dispatch(ctx context.Context, opType operations.Type, opts Options) (*Result, error) {
	logger := logging.GetLogger("dispatcher")

	opts.Recorder.Reset()

	var op operations.Operation
	switch opType {
	case operations.SetCookbookVersion:
		op = operations.CookbookVersion{}
	case operations.SetupHabitat:
		op = operations.HabitatSetup{}
	case operations.SetupChef:
		op = operations.ChefSetup{}
	case operations.EnvCookbookVersion:
		op = operations.EnvironmentPin{}
	default:
		err := errors.Newf(errors.ErrUnknownOperation, "unknown helper %q", string(opType))
		opts.Reporter.Fail(err.Error())
		return nil, err
	}

	logger.Debug().
		Str("operation", string(opType)).
		Str("platform", opts.Config.Platform.String()).
		Msg("Dispatching helper operation")

	deps := operations.Deps{
		Config:   opts.Config,
		FS:       opts.FS,
		Runner:   opts.Runner,
		Recorder: opts.Recorder,
		Env:      opts.Env,
	}

	result := &Result{Operation: opType}
	if err := op.Run(ctx, deps); err != nil {
		opts.Reporter.Fail(err.Error())
		result.Commands = opts.Recorder.Commands()
		return result, err
	}

	result.Commands = opts.Recorder.Commands()
	logger.Info().
		Str("operation", string(opType)).
		Int("commands", len(result.Commands)).
		Msg("Helper operation succeeded")
	return result, nil
}
