package operations

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/chefops/pkg/errors"
	"github.com/arthur-debert/chefops/pkg/logging"
)

// ShellRunner executes command lines through the platform shell.
// Recorded commands contain redirections, so the line goes to cmd /C
// or /bin/sh -c instead of being exec'd token by token.
type ShellRunner struct {
	windows bool
}

// NewShellRunner creates a runner for the resolved platform.
func NewShellRunner(windows bool) *ShellRunner {
	return &ShellRunner{windows: windows}
}

// Run implements types.Runner. It blocks until the external process
// completes and returns a COMMAND_FAILED error carrying the combined
// output when it does not exit cleanly.
func (r *ShellRunner) Run(ctx context.Context, command string) error {
	logger := logging.GetLogger("operations.runner")

	var cmd *exec.Cmd
	if r.windows {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(ctx, "/bin/sh", "-c", command)
	}

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	logger.Debug().Str("command", command).Msg("Executing command")

	if err := cmd.Run(); err != nil {
		logger.Error().Err(err).Str("command", command).Msg("Command failed")
		return errors.Wrapf(err, errors.ErrCommandFailed, "command failed: %s", command).
			WithDetail("output", strings.TrimSpace(buf.String()))
	}

	logger.Debug().Str("command", command).Msg("Command succeeded")
	return nil
}

// OSEnv is the process-wide environment.
type OSEnv struct{}

// Set implements types.Env.
func (OSEnv) Set(name, value string) error {
	return os.Setenv(name, value)
}

// Get implements types.Env.
func (OSEnv) Get(name string) string {
	return os.Getenv(name)
}
