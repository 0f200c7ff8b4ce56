package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/chefops/pkg/errors"
	"github.com/arthur-debert/chefops/pkg/types"
)

// EnvInputPrefix is the agent's convention for exposing task inputs as
// environment variables (input "chefServerUrl" becomes
// INPUT_CHEFSERVERURL).
const EnvInputPrefix = "INPUT_"

// LoadInputs assembles the raw input source the way the agent does,
// lowest to highest precedence:
//
//  1. built-in defaults,
//  2. an optional inputs file (YAML or TOML),
//  3. INPUT_* process environment variables.
func LoadInputs(inputsFile string) (types.InputSource, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultInputs(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load input defaults")
	}

	if inputsFile != "" {
		parser, err := parserFor(inputsFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(inputsFile), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"failed to load inputs from %s", inputsFile)
		}
	}

	if err := k.Load(env.Provider(EnvInputPrefix, ".", canonicalInputKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load INPUT_ environment variables")
	}

	return &koanfSource{k: k}, nil
}

// defaultInputs holds values an agent is allowed to omit.
func defaultInputs() map[string]interface{} {
	return map[string]interface{}{
		InputChefSSLVerify: "true",
	}
}

func parserFor(path string) (koanf.Parser, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yamlParser{}, nil
	case ".toml":
		return tomlParser{}, nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad,
			"unsupported inputs file format %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// canonicalInputKey maps INPUT_CHEFSERVERURL back to "chefServerUrl".
// The agent upper-cases input names, so the match is case-insensitive
// against the known input list.
func canonicalInputKey(envKey string) string {
	name := strings.TrimPrefix(envKey, EnvInputPrefix)
	for _, known := range inputNames {
		if strings.EqualFold(known, name) {
			return known
		}
	}
	return strings.ToLower(name)
}

// koanfSource adapts a koanf tree to the InputSource seam.
type koanfSource struct {
	k *koanf.Koanf
}

func (s *koanfSource) Get(name string) (string, bool) {
	if !s.k.Exists(name) {
		return "", false
	}
	return s.k.String(name), true
}
