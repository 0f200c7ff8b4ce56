package operations

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/chefops/pkg/errors"
	"github.com/arthur-debert/chefops/pkg/logging"
	"github.com/arthur-debert/chefops/pkg/paths"
)

// cookbookVersionsKey is the pinning map inside a Chef environment
// document.
const cookbookVersionsKey = "cookbook_versions"

// EnvironmentPin pins a single cookbook version in a Chef environment.
// The environment document is downloaded through knife into the temp
// directory, mutated locally, and uploaded back; the whole document is
// round-tripped so unrelated keys survive. Exactly two commands reach
// the recorder, download then upload.
type EnvironmentPin struct{}

// Name implements Operation.
func (EnvironmentPin) Name() Type {
	return EnvCookbookVersion
}

// Run implements Operation. Each external call completes before the
// next step begins; a failed download skips the mutation and the
// upload, and a malformed document skips the upload without touching
// the file further.
func (EnvironmentPin) Run(ctx context.Context, deps Deps) error {
	in, err := deps.Config.Environment()
	if err != nil {
		return err
	}

	logger := logging.GetLogger("operations.environment")
	defer logging.LogOperationStart(logger, string(EnvCookbookVersion))()

	kind := deps.Config.Platform
	knife := deps.Config.Paths.KnifeExecutable
	envFile := paths.Join(kind, deps.Config.Paths.TmpDir, in.Name+".json")

	download := fmt.Sprintf("%s environment show %s -F json > %s", knife, in.Name, envFile)
	deps.Recorder.Record(download)
	if err := deps.Runner.Run(ctx, download); err != nil {
		return errors.Wrapf(err, errors.ErrCommandFailed,
			"failed to download environment %s", in.Name)
	}

	raw, err := deps.FS.ReadFile(envFile)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read environment document %s", envFile)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return errors.Wrapf(err, errors.ErrMalformedDocument,
			"environment document %s is not valid JSON", envFile)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}

	versions, ok := doc[cookbookVersionsKey].(map[string]interface{})
	if !ok {
		versions = map[string]interface{}{}
	}
	versions[in.Cookbook] = in.Version
	doc[cookbookVersionsKey] = versions

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal,
			"failed to serialize environment document %s", envFile)
	}
	if err := deps.FS.WriteFile(envFile, out, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to rewrite environment document %s", envFile)
	}

	upload := fmt.Sprintf("%s environment from file %s", knife, envFile)
	deps.Recorder.Record(upload)
	if err := deps.Runner.Run(ctx, upload); err != nil {
		return errors.Wrapf(err, errors.ErrCommandFailed,
			"failed to upload environment %s", in.Name)
	}

	logger.Info().
		Str("environment", in.Name).
		Str("cookbook", in.Cookbook).
		Str("version", in.Version).
		Msg("Environment cookbook version pinned")
	return nil
}
