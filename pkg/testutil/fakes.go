package testutil

import (
	"context"

	"github.com/arthur-debert/chefops/pkg/filesystem"
	"github.com/arthur-debert/chefops/pkg/types"
	"github.com/spf13/afero"
)

// MemFS returns an in-memory types.FS.
func MemFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// MapInputs is a map-backed InputSource.
type MapInputs map[string]string

// Get implements types.InputSource.
func (m MapInputs) Get(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}

// MapEnv is a map-backed process environment.
type MapEnv map[string]string

// Set implements types.Env.
func (m MapEnv) Set(name, value string) error {
	m[name] = value
	return nil
}

// Get implements types.Env.
func (m MapEnv) Get(name string) string {
	return m[name]
}

// FakeRunner records the commands it is asked to run. Handler, when
// set, is invoked per command so tests can simulate external tool side
// effects (for example knife writing a downloaded environment file) or
// return a scripted failure.
type FakeRunner struct {
	Commands []string
	Handler  func(ctx context.Context, command string) error
}

// Run implements types.Runner.
func (r *FakeRunner) Run(ctx context.Context, command string) error {
	r.Commands = append(r.Commands, command)
	if r.Handler != nil {
		return r.Handler(ctx, command)
	}
	return nil
}

// SpyReporter counts failure reports.
type SpyReporter struct {
	Messages []string
}

// Fail implements types.Reporter.
func (r *SpyReporter) Fail(message string) {
	r.Messages = append(r.Messages, message)
}

// Failed reports whether any failure was reported.
func (r *SpyReporter) Failed() bool {
	return len(r.Messages) > 0
}
