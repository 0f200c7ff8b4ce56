package operations

import (
	"context"

	"github.com/arthur-debert/chefops/pkg/errors"
	"github.com/arthur-debert/chefops/pkg/logging"
	"github.com/arthur-debert/chefops/pkg/paths"
)

// Environment variables the Habitat tooling reads.
const (
	// EnvHabOrigin tells hab which origin to build for
	EnvHabOrigin = "HAB_ORIGIN"

	// EnvHabCacheKeyPath tells hab where the origin keys live
	EnvHabCacheKeyPath = "HAB_CACHE_KEY_PATH"
)

// HabitatSetup writes the origin key pair into the temp directory and
// points the Habitat tooling at it through the process environment.
// No external commands are issued.
type HabitatSetup struct{}

// Name implements Operation.
func (HabitatSetup) Name() Type {
	return SetupHabitat
}

// Run implements Operation. The environment variables are only set
// once both key files are on disk, so a failed write never leaves the
// tooling pointed at missing keys.
func (HabitatSetup) Run(ctx context.Context, deps Deps) error {
	in, err := deps.Config.Habitat()
	if err != nil {
		return err
	}

	logger := logging.GetLogger("operations.habitat")
	defer logging.LogOperationStart(logger, string(SetupHabitat))()

	kind := deps.Config.Platform
	tmpDir := deps.Config.Paths.TmpDir
	keyName := in.Origin + "-" + in.Revision

	publicKeyPath := paths.Join(kind, tmpDir, keyName+".pub")
	if err := deps.FS.WriteFile(publicKeyPath, []byte(in.PublicKey), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write origin public key to %s", publicKeyPath)
	}

	signingKeyPath := paths.Join(kind, tmpDir, keyName+".sig.key")
	if err := deps.FS.WriteFile(signingKeyPath, []byte(in.SigningKey), 0600); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write origin signing key to %s", signingKeyPath)
	}

	if err := deps.Env.Set(EnvHabOrigin, in.Origin); err != nil {
		return errors.Wrapf(err, errors.ErrEnvSet, "failed to set %s", EnvHabOrigin)
	}
	if err := deps.Env.Set(EnvHabCacheKeyPath, tmpDir); err != nil {
		return errors.Wrapf(err, errors.ErrEnvSet, "failed to set %s", EnvHabCacheKeyPath)
	}

	logger.Info().
		Str("origin", in.Origin).
		Str("revision", in.Revision).
		Str("keyPath", tmpDir).
		Msg("Habitat origin keys provisioned")
	return nil
}
