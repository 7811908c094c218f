package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathlib-go/pathlib/pkg/config"
	"github.com/pathlib-go/pathlib/pkg/errors"
	"github.com/pathlib-go/pathlib/pkg/flavor"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathlib.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "native", cfg.Flavor)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Nil(t, cfg.CaseSensitive)
}

func TestLoadFromEnvPath(t *testing.T) {
	path := writeConfig(t, `
flavor = "windows"
case_sensitive = true
output_format = "yaml"
`)
	t.Setenv(config.EnvConfigFile, path)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "windows", cfg.Flavor)
	require.NotNil(t, cfg.CaseSensitive)
	assert.True(t, *cfg.CaseSensitive)
	assert.Equal(t, "yaml", cfg.OutputFormat)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `flavor = "posix"`)
	t.Setenv(config.EnvConfigFile, path)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "posix", cfg.Flavor)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Nil(t, cfg.CaseSensitive)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	t.Setenv(config.EnvConfigFile, filepath.Join(t.TempDir(), "nope.toml"))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, `flavor = [broken`)
	t.Setenv(config.EnvConfigFile, path)

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestResolveFlavor(t *testing.T) {
	cfg := config.Default()

	cfg.Flavor = "posix"
	f, err := cfg.ResolveFlavor()
	require.NoError(t, err)
	assert.Equal(t, flavor.Posix, f)

	cfg.Flavor = "windows"
	f, err = cfg.ResolveFlavor()
	require.NoError(t, err)
	assert.Equal(t, flavor.Windows, f)

	cfg.Flavor = "native"
	f, err = cfg.ResolveFlavor()
	require.NoError(t, err)
	assert.Equal(t, flavor.Native(), f)

	cfg.Flavor = "plan9"
	_, err = cfg.ResolveFlavor()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
