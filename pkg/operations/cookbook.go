package operations

import (
	"context"
	"regexp"

	"github.com/arthur-debert/chefops/pkg/errors"
	"github.com/arthur-debert/chefops/pkg/logging"
)

// CookbookVersion rewrites the version line of a cookbook metadata
// file in place. The caller supplies both the pattern and the new
// version verbatim; no semantic version validation happens here.
type CookbookVersion struct{}

// Name implements Operation.
func (CookbookVersion) Name() Type {
	return SetCookbookVersion
}

// Run implements Operation.
func (CookbookVersion) Run(ctx context.Context, deps Deps) error {
	in, err := deps.Config.Cookbook()
	if err != nil {
		return err
	}

	logger := logging.GetLogger("operations.cookbook")
	defer logging.LogOperationStart(logger, string(SetCookbookVersion))()

	if _, err := deps.FS.Stat(in.MetadataPath); err != nil {
		return errors.Wrapf(err, errors.ErrFileNotFound,
			"cookbook metadata not found at %s", in.MetadataPath)
	}

	content, err := deps.FS.ReadFile(in.MetadataPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read cookbook metadata at %s", in.MetadataPath)
	}

	pattern, err := regexp.Compile(in.VersionRegex)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput,
			"invalid cookbook version pattern %q", in.VersionRegex)
	}

	updated := replaceFirst(pattern, string(content), "version '"+in.Version+"'")

	if err := deps.FS.WriteFile(in.MetadataPath, []byte(updated), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write cookbook metadata at %s", in.MetadataPath)
	}

	logger.Info().
		Str("path", in.MetadataPath).
		Str("version", in.Version).
		Msg("Cookbook version updated")
	return nil
}

// replaceFirst replaces only the first match, with the replacement
// taken literally. Re-running against the rewritten file matches the
// same pattern again, so the patch is idempotent for a fixed version.
func replaceFirst(pattern *regexp.Regexp, s, replacement string) string {
	loc := pattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + replacement + s[loc[1]:]
}
