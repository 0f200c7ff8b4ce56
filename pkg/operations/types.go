package operations

import (
	"context"

	"github.com/arthur-debert/chefops/pkg/config"
	"github.com/arthur-debert/chefops/pkg/types"
)

// Type names one of the helper operations. The set is closed; the
// dispatcher switches over it exhaustively.
type Type string

const (
	// SetCookbookVersion patches a cookbook metadata file in place
	SetCookbookVersion Type = "setCookbookVersion"

	// SetupHabitat provisions a Habitat origin key pair
	SetupHabitat Type = "setupHabitat"

	// SetupChef materializes the knife configuration
	SetupChef Type = "setupChef"

	// EnvCookbookVersion pins a cookbook version in a Chef environment
	EnvCookbookVersion Type = "envCookbookVersion"
)

// Operation is one unit of work the dispatcher can execute.
type Operation interface {
	Name() Type
	Run(ctx context.Context, deps Deps) error
}

// Deps bundles the capabilities an operation may touch. Tests inject
// the fakes from pkg/testutil; cmd/chefops wires the real
// implementations.
type Deps struct {
	Config   *config.Config
	FS       types.FS
	Runner   types.Runner
	Recorder Recorder
	Env      types.Env
}
