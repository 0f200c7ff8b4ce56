// Package platform maps the agent's host platform identifier to the
// closed set of platforms chefops can provision.
package platform

// Kind is the detected host platform.
type Kind int

const (
	// Unsupported is any platform chefops cannot provision. Detection
	// of an unsupported platform is fatal for the whole run.
	Unsupported Kind = iota

	// Windows is a Windows build agent.
	Windows

	// Linux is a Linux build agent.
	Linux
)

// Host platform identifiers as the pipeline agent reports them.
const (
	IDWindows = "win32"
	IDLinux   = "linux"
)

// Detect maps a host platform identifier to a Kind. Anything other
// than the two known identifiers is Unsupported.
func Detect(platformID string) Kind {
	switch platformID {
	case IDWindows:
		return Windows
	case IDLinux:
		return Linux
	default:
		return Unsupported
	}
}

// Supported reports whether chefops can run on this platform.
func (k Kind) Supported() bool {
	return k == Windows || k == Linux
}

func (k Kind) String() string {
	switch k {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	default:
		return "unsupported"
	}
}
