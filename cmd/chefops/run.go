package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/arthur-debert/chefops/pkg/config"
	"github.com/arthur-debert/chefops/pkg/dispatcher"
	"github.com/arthur-debert/chefops/pkg/filesystem"
	"github.com/arthur-debert/chefops/pkg/operations"
	"github.com/arthur-debert/chefops/pkg/platform"
	"github.com/arthur-debert/chefops/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// EnvAgentTempDirectory is the agent-provided temp directory root.
const EnvAgentTempDirectory = "AGENT_TEMPDIRECTORY"

var (
	helperName string
	inputsFile string
	tmpRoot    string
	platformID string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a helper operation",
	Long: `Run one of the helper operations: setCookbookVersion, setupHabitat,
setupChef or envCookbookVersion. Inputs come from INPUT_* environment
variables (the agent convention) or from an inputs file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reporter := &logReporter{}

		inputs, err := config.LoadInputs(inputsFile)
		if err != nil {
			return err
		}

		helper := helperName
		if helper == "" {
			helper, _ = inputs.Get(config.InputHelper)
		}

		tmp := tmpRoot
		if tmp == "" {
			tmp = os.Getenv(EnvAgentTempDirectory)
		}
		if tmp == "" {
			tmp = os.TempDir()
		}

		pid := platformID
		if pid == "" {
			pid = hostPlatformID()
		}

		cfg, err := config.Resolve(inputs, pid, tmp)
		if err != nil {
			reporter.Fail(err.Error())
			fmt.Println(style.RenderRunReport(helper, nil, err))
			return err
		}

		recorder := operations.NewStackRecorder()
		result, err := dispatcher.Dispatch(cmd.Context(), operations.Type(helper), dispatcher.Options{
			Config:   cfg,
			FS:       filesystem.NewOS(),
			Runner:   operations.NewShellRunner(cfg.IsWindows),
			Recorder: recorder,
			Env:      operations.OSEnv{},
			Reporter: reporter,
		})

		commands := recorder.Commands()
		if result != nil {
			commands = result.Commands
		}
		fmt.Println(style.RenderRunReport(helper, commands, err))
		return err
	},
}

func init() {
	runCmd.Flags().StringVar(&helperName, "helper", "", "Operation to run (defaults to the 'helper' input)")
	runCmd.Flags().StringVar(&inputsFile, "inputs", "", "Optional inputs file (.yaml, .yml or .toml)")
	runCmd.Flags().StringVar(&tmpRoot, "tmp-dir", "", "Temp directory root (defaults to $AGENT_TEMPDIRECTORY)")
	runCmd.Flags().StringVar(&platformID, "platform", "", "Override the detected host platform identifier")
}

// hostPlatformID maps the Go runtime to the agent's platform
// identifier vocabulary.
func hostPlatformID() string {
	switch runtime.GOOS {
	case "windows":
		return platform.IDWindows
	case "linux":
		return platform.IDLinux
	default:
		return runtime.GOOS
	}
}

// logReporter surfaces the single fatal failure of a run through the
// structured log.
type logReporter struct {
	failed bool
}

func (r *logReporter) Fail(message string) {
	r.failed = true
	log.Error().Msg(message)
}
