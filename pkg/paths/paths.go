// Package paths derives the filesystem locations of the Chef
// Workstation tooling for a detected platform. Every path is fully
// determined by the platform kind plus the agent's temp directory
// root, so resolution is deterministic and re-runnable.
package paths

import (
	"strings"

	"github.com/arthur-debert/chefops/pkg/errors"
	"github.com/arthur-debert/chefops/pkg/platform"
)

// Tool installation roots and config locations.
// IMPORTANT: These constants mirror where the Chef Workstation
// installers place the tooling on build agents. They are not
// user-configurable; the wrapped tools expect them.
const (
	// WindowsWorkstationRoot is where Chef Workstation installs on Windows
	WindowsWorkstationRoot = `C:\opscode\chef-workstation`

	// LinuxWorkstationRoot is where Chef Workstation installs on Linux
	LinuxWorkstationRoot = "/opt/chef-workstation"

	// WindowsConfigDir is the knife profile directory on Windows agents
	WindowsConfigDir = `C:\.chef`

	// LinuxConfigDir is the knife profile directory on Linux agents
	LinuxConfigDir = "/etc/chef"

	// WindowsInstallScript is the workstation install script on Windows
	WindowsInstallScript = "install.ps1"

	// LinuxInstallScript is the workstation install script on Linux
	LinuxInstallScript = "install.sh"

	// windowsExecSuffix is appended to tool names on Windows
	windowsExecSuffix = ".bat"
)

// Resolved holds the derived tool locations for one platform. It is a
// value object; never mutated after Resolve returns it.
type Resolved struct {
	// WorkstationDir is the Chef Workstation installation root
	WorkstationDir string

	// ChefExecutable is the chef CLI
	ChefExecutable string

	// BerksExecutable is the berkshelf CLI
	BerksExecutable string

	// InspecExecutable is the inspec CLI
	InspecExecutable string

	// KnifeExecutable is the knife CLI
	KnifeExecutable string

	// ConfigDir is where config.rb and client.pem are materialized
	ConfigDir string

	// ScriptPath is the workstation install script inside the temp root
	ScriptPath string

	// TmpDir is the agent temp directory root, passed through verbatim
	TmpDir string
}

// Resolve derives every tool path for the given platform. The tmpRoot
// is the agent's temp directory; it seeds ScriptPath and TmpDir.
func Resolve(kind platform.Kind, tmpRoot string) (Resolved, error) {
	if !kind.Supported() {
		return Resolved{}, errors.Newf(errors.ErrUnsupportedPlatform,
			"cannot resolve tool paths for platform %s", kind)
	}

	root := LinuxWorkstationRoot
	script := LinuxInstallScript
	configDir := LinuxConfigDir
	suffix := ""
	if kind == platform.Windows {
		root = WindowsWorkstationRoot
		script = WindowsInstallScript
		configDir = WindowsConfigDir
		suffix = windowsExecSuffix
	}

	return Resolved{
		WorkstationDir:   root,
		ChefExecutable:   Join(kind, root, "bin", "chef"+suffix),
		BerksExecutable:  Join(kind, root, "bin", "berks"+suffix),
		InspecExecutable: Join(kind, root, "bin", "inspec"+suffix),
		KnifeExecutable:  Join(kind, root, "bin", "knife"+suffix),
		ConfigDir:        configDir,
		ScriptPath:       Join(kind, tmpRoot, script),
		TmpDir:           tmpRoot,
	}, nil
}

// Join joins path segments with the separator of the target platform.
// filepath.Join is deliberately avoided: paths are built for the
// platform the configuration resolved, not the host running the tests.
func Join(kind platform.Kind, elem ...string) string {
	sep := "/"
	if kind == platform.Windows {
		sep = `\`
	}
	return strings.Join(elem, sep)
}
