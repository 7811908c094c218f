// Package config loads the optional CLI configuration file. The lexical
// core takes no configuration; this only sets command-line defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/pathlib-go/pathlib/pkg/errors"
	"github.com/pathlib-go/pathlib/pkg/flavor"
	"github.com/pathlib-go/pathlib/pkg/logging"
)

var log = logging.GetLogger("config")

// EnvConfigFile overrides the configuration file location.
const EnvConfigFile = "PATHLIB_CONFIG"

// ConfigFileName is the configuration file path relative to the XDG
// config directory.
var ConfigFileName = filepath.Join("pathlib", "pathlib.toml")

// Config holds CLI defaults read from pathlib.toml.
type Config struct {
	// Flavor is "posix", "windows" or "native".
	Flavor string `toml:"flavor"`

	// CaseSensitive overrides the flavor's default case sensitivity for
	// pattern matching. Unset means "use the flavor's default".
	CaseSensitive *bool `toml:"case_sensitive"`

	// OutputFormat is "text", "yaml" or "toml".
	OutputFormat string `toml:"output_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Flavor:       "native",
		OutputFormat: "text",
	}
}

// Load reads the configuration file, if present, on top of the defaults.
// Lookup order: $PATHLIB_CONFIG, then pathlib/pathlib.toml under the XDG
// config directories. A missing file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv(EnvConfigFile)
	if path == "" {
		found, err := xdg.SearchConfigFile(ConfigFileName)
		if err != nil {
			log.Debug().Msg("No configuration file found, using defaults")
			return cfg, nil
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
	}

	log.Debug().Str("path", path).Msg("Loaded configuration")
	return cfg, nil
}

// ResolveFlavor maps the configured flavor name to a Flavor value.
func (c *Config) ResolveFlavor() (flavor.Flavor, error) {
	f, ok := flavor.FromName(c.Flavor)
	if !ok {
		return 0, errors.Newf(errors.ErrConfigParse, "unknown flavor %q", c.Flavor)
	}
	return f, nil
}
