package operations

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/arthur-debert/chefops/pkg/config"
	"github.com/arthur-debert/chefops/pkg/errors"
	"github.com/arthur-debert/chefops/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func environmentConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.Resolve(testutil.MapInputs{
		config.InputChefEnvironmentName: "testing",
		config.InputChefCookbookName:    "mycookbook",
		config.InputChefCookbookVersion: "100.98.99",
	}, "linux", "/agent/_temp")
	require.NoError(t, err)
	return cfg
}

func TestEnvironmentPinFromEmptyDocument(t *testing.T) {
	fs := testutil.MemFS()
	cfg := environmentConfig(t)
	recorder := NewStackRecorder()

	seeded := false
	runner := &testutil.FakeRunner{
		Handler: func(ctx context.Context, command string) error {
			if !seeded {
				seeded = true
				return fs.WriteFile("/agent/_temp/testing.json", []byte("{}"), 0644)
			}
			return nil
		},
	}

	err := EnvironmentPin{}.Run(context.Background(), Deps{
		Config: cfg, FS: fs, Runner: runner, Recorder: recorder, Env: testutil.MapEnv{},
	})
	require.NoError(t, err)

	knife := "/opt/chef-workstation/bin/knife"
	assert.Equal(t, []string{
		fmt.Sprintf("%s environment show testing -F json > /agent/_temp/testing.json", knife),
		fmt.Sprintf("%s environment from file /agent/_temp/testing.json", knife),
	}, recorder.Commands())

	raw, err := fs.ReadFile("/agent/_temp/testing.json")
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, map[string]interface{}{"mycookbook": "100.98.99"}, doc["cookbook_versions"])
}

func TestEnvironmentPinPreservesUnrelatedKeys(t *testing.T) {
	fs := testutil.MemFS()
	cfg := environmentConfig(t)

	document := `{
  "name": "testing",
  "description": "integration environment",
  "cookbook_versions": {"other": "1.0.0"},
  "default_attributes": {"tier": "test"}
}`
	seeded := false
	runner := &testutil.FakeRunner{
		Handler: func(ctx context.Context, command string) error {
			if !seeded {
				seeded = true
				return fs.WriteFile("/agent/_temp/testing.json", []byte(document), 0644)
			}
			return nil
		},
	}

	err := EnvironmentPin{}.Run(context.Background(), Deps{
		Config: cfg, FS: fs, Runner: runner, Recorder: NewStackRecorder(), Env: testutil.MapEnv{},
	})
	require.NoError(t, err)

	raw, err := fs.ReadFile("/agent/_temp/testing.json")
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, "testing", doc["name"])
	assert.Equal(t, "integration environment", doc["description"])
	assert.Equal(t, map[string]interface{}{"tier": "test"}, doc["default_attributes"])
	assert.Equal(t, map[string]interface{}{
		"other":      "1.0.0",
		"mycookbook": "100.98.99",
	}, doc["cookbook_versions"])
}

func TestEnvironmentPinOverwritesExistingPin(t *testing.T) {
	fs := testutil.MemFS()
	cfg := environmentConfig(t)

	seeded := false
	runner := &testutil.FakeRunner{
		Handler: func(ctx context.Context, command string) error {
			if !seeded {
				seeded = true
				return fs.WriteFile("/agent/_temp/testing.json",
					[]byte(`{"cookbook_versions": {"mycookbook": "0.0.1"}}`), 0644)
			}
			return nil
		},
	}

	err := EnvironmentPin{}.Run(context.Background(), Deps{
		Config: cfg, FS: fs, Runner: runner, Recorder: NewStackRecorder(), Env: testutil.MapEnv{},
	})
	require.NoError(t, err)

	raw, err := fs.ReadFile("/agent/_temp/testing.json")
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, map[string]interface{}{"mycookbook": "100.98.99"}, doc["cookbook_versions"])
}

func TestEnvironmentPinDownloadFailureStopsRun(t *testing.T) {
	fs := testutil.MemFS()
	cfg := environmentConfig(t)
	recorder := NewStackRecorder()

	runner := &testutil.FakeRunner{
		Handler: func(ctx context.Context, command string) error {
			return fmt.Errorf("exit status 100")
		},
	}

	err := EnvironmentPin{}.Run(context.Background(), Deps{
		Config: cfg, FS: fs, Runner: runner, Recorder: recorder, Env: testutil.MapEnv{},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))

	// only the download was attempted
	assert.Len(t, recorder.Commands(), 1)
	assert.Len(t, runner.Commands, 1)
}

func TestEnvironmentPinMalformedDocumentSkipsUpload(t *testing.T) {
	fs := testutil.MemFS()
	cfg := environmentConfig(t)
	recorder := NewStackRecorder()

	runner := &testutil.FakeRunner{
		Handler: func(ctx context.Context, command string) error {
			return fs.WriteFile("/agent/_temp/testing.json", []byte("{not json"), 0644)
		},
	}

	err := EnvironmentPin{}.Run(context.Background(), Deps{
		Config: cfg, FS: fs, Runner: runner, Recorder: recorder, Env: testutil.MapEnv{},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedDocument))

	// download recorded, upload never issued
	assert.Len(t, recorder.Commands(), 1)

	// the malformed document is left exactly as knife wrote it
	raw, readErr := fs.ReadFile("/agent/_temp/testing.json")
	require.NoError(t, readErr)
	assert.Equal(t, "{not json", string(raw))
}
