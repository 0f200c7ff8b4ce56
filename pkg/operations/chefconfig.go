package operations

import (
	"context"
	"fmt"
	"strings"

	"github.com/arthur-debert/chefops/pkg/config"
	"github.com/arthur-debert/chefops/pkg/errors"
	"github.com/arthur-debert/chefops/pkg/logging"
	"github.com/arthur-debert/chefops/pkg/paths"
)

// Files materialized in the config directory.
const (
	// KnifeConfigFile is the knife configuration file name
	KnifeConfigFile = "config.rb"

	// ClientKeyFile holds the client key knife authenticates with
	ClientKeyFile = "client.pem"
)

// ChefSetup materializes the knife configuration for a Chef server:
// a config.rb in the knife grammar and the client key verbatim. The
// file shapes are dictated by the wrapped Chef client, not by chefops.
// No external commands are issued.
type ChefSetup struct{}

// Name implements Operation.
func (ChefSetup) Name() Type {
	return SetupChef
}

// Run implements Operation.
func (ChefSetup) Run(ctx context.Context, deps Deps) error {
	in, err := deps.Config.ChefServer()
	if err != nil {
		return err
	}

	logger := logging.GetLogger("operations.chef")
	defer logging.LogOperationStart(logger, string(SetupChef))()

	configDir := deps.Config.Paths.ConfigDir
	if err := deps.FS.MkdirAll(configDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create chef config directory %s", configDir)
	}

	kind := deps.Config.Platform
	clientKeyPath := paths.Join(kind, configDir, ClientKeyFile)
	configPath := paths.Join(kind, configDir, KnifeConfigFile)

	content := renderKnifeConfig(in, clientKeyPath, deps.Config.IsWindows)
	if err := deps.FS.WriteFile(configPath, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write %s", configPath)
	}

	if err := deps.FS.WriteFile(clientKeyPath, []byte(in.Password), 0600); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write %s", clientKeyPath)
	}

	logger.Info().
		Str("configDir", configDir).
		Str("serverUrl", in.ServerURL).
		Msg("Chef workstation configured")
	return nil
}

// renderKnifeConfig builds config.rb in the knife configuration
// grammar. Line endings follow the target platform.
func renderKnifeConfig(in config.ChefServerInputs, clientKeyPath string, windows bool) string {
	eol := "\n"
	if windows {
		eol = "\r\n"
	}

	sslVerifyMode := ":verify_peer"
	if !in.SSLVerify {
		sslVerifyMode = ":verify_none"
	}

	lines := []string{
		"log_level        :info",
		"log_location     STDOUT",
		fmt.Sprintf("node_name        '%s'", in.Username),
		fmt.Sprintf("client_key       '%s'", clientKeyPath),
		fmt.Sprintf("chef_server_url  '%s'", in.ServerURL),
		"ssl_verify_mode  " + sslVerifyMode,
	}
	return strings.Join(lines, eol) + eol
}
