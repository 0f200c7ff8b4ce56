// Package config resolves the raw pipeline inputs and the detected
// platform into the immutable configuration the dispatcher consumes.
// Input validation is lazy: a Config can be built with only the inputs
// of the operation that will actually run.
package config

import (
	"strconv"

	"github.com/arthur-debert/chefops/pkg/errors"
	"github.com/arthur-debert/chefops/pkg/paths"
	"github.com/arthur-debert/chefops/pkg/platform"
	"github.com/arthur-debert/chefops/pkg/types"
)

// Config is the resolved, immutable per-run configuration.
type Config struct {
	// Platform is the detected agent platform
	Platform platform.Kind

	// IsWindows gates platform-sensitive formatting in generated files
	IsWindows bool

	// Paths holds the derived tool locations
	Paths paths.Resolved

	inputs types.InputSource
}

// Resolve builds a Config from the raw inputs, the host platform
// identifier and the agent temp directory root. An unsupported
// platform is fatal; no paths or inputs are produced.
func Resolve(inputs types.InputSource, platformID, tmpRoot string) (*Config, error) {
	kind := platform.Detect(platformID)
	if !kind.Supported() {
		return nil, errors.Newf(errors.ErrUnsupportedPlatform,
			"platform %q is not supported, chefops runs on win32 and linux agents", platformID)
	}

	resolved, err := paths.Resolve(kind, tmpRoot)
	if err != nil {
		return nil, err
	}

	return &Config{
		Platform:  kind,
		IsWindows: kind == platform.Windows,
		Paths:     resolved,
		inputs:    inputs,
	}, nil
}

// Input returns a raw input value. Presence is not assumed.
func (c *Config) Input(name string) (string, bool) {
	if c.inputs == nil {
		return "", false
	}
	return c.inputs.Get(name)
}

func (c *Config) requireInput(name string) (string, error) {
	value, ok := c.Input(name)
	if !ok || value == "" {
		return "", errors.Newf(errors.ErrMissingInput, "required input %q is not set", name)
	}
	return value, nil
}

// CookbookInputs are the setCookbookVersion parameters.
type CookbookInputs struct {
	Version      string
	MetadataPath string
	VersionRegex string
}

// Cookbook validates and returns the setCookbookVersion inputs.
func (c *Config) Cookbook() (CookbookInputs, error) {
	version, err := c.requireInput(InputCookbookVersionNumber)
	if err != nil {
		return CookbookInputs{}, err
	}
	metadataPath, err := c.requireInput(InputCookbookMetadataPath)
	if err != nil {
		return CookbookInputs{}, err
	}
	versionRegex, err := c.requireInput(InputCookbookVersionRegex)
	if err != nil {
		return CookbookInputs{}, err
	}
	return CookbookInputs{
		Version:      version,
		MetadataPath: metadataPath,
		VersionRegex: versionRegex,
	}, nil
}

// HabitatInputs are the setupHabitat parameters.
type HabitatInputs struct {
	Origin     string
	Revision   string
	PublicKey  string
	SigningKey string
}

// Habitat validates and returns the setupHabitat inputs.
func (c *Config) Habitat() (HabitatInputs, error) {
	origin, err := c.requireInput(InputHabitatOrigin)
	if err != nil {
		return HabitatInputs{}, err
	}
	revision, err := c.requireInput(InputHabitatOriginRevision)
	if err != nil {
		return HabitatInputs{}, err
	}
	publicKey, err := c.requireInput(InputHabitatOriginPublicKey)
	if err != nil {
		return HabitatInputs{}, err
	}
	signingKey, err := c.requireInput(InputHabitatOriginSigningKey)
	if err != nil {
		return HabitatInputs{}, err
	}
	return HabitatInputs{
		Origin:     origin,
		Revision:   revision,
		PublicKey:  publicKey,
		SigningKey: signingKey,
	}, nil
}

// ChefServerInputs are the setupChef parameters.
type ChefServerInputs struct {
	ServerURL string
	Username  string
	Password  string
	SSLVerify bool
}

// ChefServer validates and returns the setupChef inputs. SSL
// verification defaults to on when the input is absent.
func (c *Config) ChefServer() (ChefServerInputs, error) {
	serverURL, err := c.requireInput(InputChefServerURL)
	if err != nil {
		return ChefServerInputs{}, err
	}
	username, err := c.requireInput(InputChefUsername)
	if err != nil {
		return ChefServerInputs{}, err
	}
	password, err := c.requireInput(InputChefPassword)
	if err != nil {
		return ChefServerInputs{}, err
	}

	sslVerify := true
	if raw, ok := c.Input(InputChefSSLVerify); ok && raw != "" {
		sslVerify, err = strconv.ParseBool(raw)
		if err != nil {
			return ChefServerInputs{}, errors.Wrapf(err, errors.ErrInvalidInput,
				"input %q must be a boolean, got %q", InputChefSSLVerify, raw)
		}
	}

	return ChefServerInputs{
		ServerURL: serverURL,
		Username:  username,
		Password:  password,
		SSLVerify: sslVerify,
	}, nil
}

// EnvironmentInputs are the envCookbookVersion parameters.
type EnvironmentInputs struct {
	Name     string
	Cookbook string
	Version  string
}

// Environment validates and returns the envCookbookVersion inputs.
func (c *Config) Environment() (EnvironmentInputs, error) {
	name, err := c.requireInput(InputChefEnvironmentName)
	if err != nil {
		return EnvironmentInputs{}, err
	}
	cookbook, err := c.requireInput(InputChefCookbookName)
	if err != nil {
		return EnvironmentInputs{}, err
	}
	version, err := c.requireInput(InputChefCookbookVersion)
	if err != nil {
		return EnvironmentInputs{}, err
	}
	return EnvironmentInputs{
		Name:     name,
		Cookbook: cookbook,
		Version:  version,
	}, nil
}
