package dispatcher

import (
	"context"
	"testing"

	"github.com/arthur-debert/chefops/pkg/config"
	"github.com/arthur-debert/chefops/pkg/errors"
	"github.com/arthur-debert/chefops/pkg/operations"
	"github.com/arthur-debert/chefops/pkg/testutil"
	"github.com/arthur-debert/chefops/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatchOptions(t *testing.T, inputs testutil.MapInputs, fs types.FS) (Options, *testutil.SpyReporter) {
	t.Helper()

	cfg, err := config.Resolve(inputs, "linux", "/agent/_temp")
	require.NoError(t, err)

	reporter := &testutil.SpyReporter{}
	return Options{
		Config:   cfg,
		FS:       fs,
		Runner:   &testutil.FakeRunner{},
		Recorder: operations.NewStackRecorder(),
		Env:      testutil.MapEnv{},
		Reporter: reporter,
	}, reporter
}

func TestDispatchRunsOperation(t *testing.T) {
	fs := testutil.MemFS()
	opts, reporter := dispatchOptions(t, testutil.MapInputs{
		config.InputHabitatOrigin:           "myorigin",
		config.InputHabitatOriginRevision:   "202007221100",
		config.InputHabitatOriginPublicKey:  "Hab public key",
		config.InputHabitatOriginSigningKey: "Hab signing key",
	}, fs)

	result, err := Dispatch(context.Background(), operations.SetupHabitat, opts)
	require.NoError(t, err)
	assert.Equal(t, operations.SetupHabitat, result.Operation)
	assert.Empty(t, result.Commands)
	assert.False(t, reporter.Failed())

	_, statErr := fs.Stat("/agent/_temp/myorigin-202007221100.pub")
	assert.NoError(t, statErr)
}

func TestDispatchUnknownOperation(t *testing.T) {
	fs := testutil.MemFS()
	opts, reporter := dispatchOptions(t, testutil.MapInputs{}, fs)

	result, err := Dispatch(context.Background(), operations.Type("installEverything"), opts)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownOperation))

	// reported exactly once, no side effects
	assert.Len(t, reporter.Messages, 1)
	assert.Empty(t, opts.Recorder.Commands())
}

func TestDispatchMissingOperationName(t *testing.T) {
	fs := testutil.MemFS()
	opts, reporter := dispatchOptions(t, testutil.MapInputs{}, fs)

	_, err := Dispatch(context.Background(), operations.Type(""), opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownOperation))
	assert.Len(t, reporter.Messages, 1)
}

func TestDispatchReportsOperationFailureOnce(t *testing.T) {
	fs := testutil.MemFS()
	opts, reporter := dispatchOptions(t, testutil.MapInputs{
		config.InputCookbookVersionNumber: "1.2.3",
		config.InputCookbookMetadataPath:  "/missing/metadata.rb",
		config.InputCookbookVersionRegex:  `version\s+.*`,
	}, fs)

	result, err := Dispatch(context.Background(), operations.SetCookbookVersion, opts)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	assert.Len(t, reporter.Messages, 1)
	require.NotNil(t, result)
	assert.Empty(t, result.Commands)
}

func TestDispatchResetsRecorderBetweenRuns(t *testing.T) {
	fs := testutil.MemFS()
	cfg, err := config.Resolve(testutil.MapInputs{
		config.InputChefEnvironmentName: "testing",
		config.InputChefCookbookName:    "mycookbook",
		config.InputChefCookbookVersion: "100.98.99",
	}, "linux", "/agent/_temp")
	require.NoError(t, err)

	recorder := operations.NewStackRecorder()
	recorder.Record("stale entry from a prior run")

	runner := &testutil.FakeRunner{
		Handler: func(ctx context.Context, command string) error {
			return fs.WriteFile("/agent/_temp/testing.json", []byte("{}"), 0644)
		},
	}

	result, err := Dispatch(context.Background(), operations.EnvCookbookVersion, Options{
		Config:   cfg,
		FS:       fs,
		Runner:   runner,
		Recorder: recorder,
		Env:      testutil.MapEnv{},
		Reporter: &testutil.SpyReporter{},
	})
	require.NoError(t, err)

	require.Len(t, result.Commands, 2)
	assert.NotContains(t, result.Commands, "stale entry from a prior run")
}
