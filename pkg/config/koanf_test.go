package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/chefops/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInputsFromEnv(t *testing.T) {
	t.Setenv("INPUT_HELPER", "setupHabitat")
	t.Setenv("INPUT_HABITATORIGIN", "myorigin")
	t.Setenv("INPUT_CHEFSERVERURL", "https://chef.example.com")

	source, err := LoadInputs("")
	require.NoError(t, err)

	helper, ok := source.Get(InputHelper)
	assert.True(t, ok)
	assert.Equal(t, "setupHabitat", helper)

	origin, ok := source.Get(InputHabitatOrigin)
	assert.True(t, ok)
	assert.Equal(t, "myorigin", origin)

	serverURL, ok := source.Get(InputChefServerURL)
	assert.True(t, ok)
	assert.Equal(t, "https://chef.example.com", serverURL)

	_, ok = source.Get(InputChefPassword)
	assert.False(t, ok)
}

func TestLoadInputsDefaults(t *testing.T) {
	source, err := LoadInputs("")
	require.NoError(t, err)

	sslVerify, ok := source.Get(InputChefSSLVerify)
	assert.True(t, ok)
	assert.Equal(t, "true", sslVerify)
}

func TestLoadInputsFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inputs.yaml")
	content := "helper: envCookbookVersion\nchefEnvironmentName: testing\nchefSslVerify: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	source, err := LoadInputs(path)
	require.NoError(t, err)

	helper, _ := source.Get(InputHelper)
	assert.Equal(t, "envCookbookVersion", helper)

	name, _ := source.Get(InputChefEnvironmentName)
	assert.Equal(t, "testing", name)

	// yaml booleans come back as their string form
	sslVerify, _ := source.Get(InputChefSSLVerify)
	assert.Equal(t, "false", sslVerify)
}

func TestLoadInputsFromTOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inputs.toml")
	content := "helper = \"setCookbookVersion\"\ncookbookVersionNumber = \"1.2.3\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	source, err := LoadInputs(path)
	require.NoError(t, err)

	helper, _ := source.Get(InputHelper)
	assert.Equal(t, "setCookbookVersion", helper)

	version, _ := source.Get(InputCookbookVersionNumber)
	assert.Equal(t, "1.2.3", version)
}

func TestLoadInputsEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inputs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("habitatOrigin: fromfile\n"), 0644))

	t.Setenv("INPUT_HABITATORIGIN", "fromenv")

	source, err := LoadInputs(path)
	require.NoError(t, err)

	origin, _ := source.Get(InputHabitatOrigin)
	assert.Equal(t, "fromenv", origin)
}

func TestLoadInputsUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inputs.ini")
	require.NoError(t, os.WriteFile(path, []byte("helper=setupChef\n"), 0644))

	_, err := LoadInputs(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestCanonicalInputKey(t *testing.T) {
	assert.Equal(t, InputChefServerURL, canonicalInputKey("INPUT_CHEFSERVERURL"))
	assert.Equal(t, InputHelper, canonicalInputKey("INPUT_HELPER"))
	// unknown inputs are kept, lower-cased
	assert.Equal(t, "somethingelse", canonicalInputKey("INPUT_SOMETHINGELSE"))
}
