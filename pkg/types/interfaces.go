// Package types defines the capability interfaces the helper
// operations are written against. Production implementations are wired
// in cmd/chefops; tests swap in the fakes from pkg/testutil.
package types

import (
	"context"
	"io/fs"
)

// FS is the filesystem surface the operations need.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Remove(name string) error
}

// Runner executes a fully formed command line and blocks until the
// external process completes or fails. Command strings may contain
// shell redirections, so implementations go through a shell rather
// than exec-ing the first token directly.
type Runner interface {
	Run(ctx context.Context, command string) error
}

// Env is process-wide environment variable access. Operations consume
// it instead of os.Setenv so tests stay hermetic.
type Env interface {
	Set(name, value string) error
	Get(name string) string
}

// Reporter receives the single fatal failure of a run. The dispatcher
// invokes it exactly once per failed run and never continues operation
// logic afterwards.
type Reporter interface {
	Fail(message string)
}

// InputSource looks up raw named pipeline parameters. Presence is
// never assumed; validation happens in the operation that needs the
// field.
type InputSource interface {
	Get(name string) (string, bool)
}
