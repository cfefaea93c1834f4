package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "scripts", c.Scan.Dir)
	assert.Equal(t, ".js", c.Scan.Suffix)
	assert.Equal(t, []string{"qrcode.min.js"}, c.Scan.Exclude)
	assert.Equal(t, "docs/codebase-flow/technical/modules.json", c.Analyze.Output)
	assert.Equal(t, DefaultDependencies, c.Analyze.Dependencies)
	assert.Equal(t, 300, c.Watch.Debounce)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Analyze.Dependencies = []string{"Storage", "bad-name"}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jsident")

	c = Default()
	c.Scan.Suffix = "js"
	assert.Error(t, c.Validate())

	c = Default()
	c.Log.Mode = "syslog"
	assert.Error(t, c.Validate())

	c = Default()
	c.Analyze.Dependencies = []string{"$", "_private", "jsQR"}
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docflow.yaml")
	content := "scan:\n  dir: src\n  exclude_patterns: ['*.min.js']\nanalyze:\n  dependencies: [Api, Store]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("DOCFLOW_ANALYZE_OUTPUT", "out/modules.json")

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "src", c.Scan.Dir)
	assert.Equal(t, ".js", c.Scan.Suffix)
	assert.Equal(t, []string{"*.min.js"}, c.Scan.ExcludePatterns)
	assert.Equal(t, []string{"Api", "Store"}, c.Analyze.Dependencies)
	assert.Equal(t, "out/modules.json", c.Analyze.Output)
	assert.Equal(t, path, GetViper().ConfigFileUsed())
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docflow.toml")
	require.NoError(t, os.WriteFile(path, []byte("[scan]\nsuffix = \"js\"\n"), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCreateDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []OutputFormat{FormatYAML, FormatJSON, FormatTOML} {
		path := filepath.Join(dir, "sub", DefaultConfigFile(f))
		require.NoError(t, CreateDefaultConfig(path, f))

		c, err := LoadConfig(path)
		require.NoError(t, err, "format %s", f)
		def := Default()
		assert.Equal(t, def.Scan.Dir, c.Scan.Dir)
		assert.Equal(t, def.Scan.Exclude, c.Scan.Exclude)
		assert.Equal(t, def.Analyze, c.Analyze)
		assert.Equal(t, def.Log, c.Log)
		assert.Equal(t, def.Watch, c.Watch)

		assert.Error(t, CreateDefaultConfig(path, f), "existing file must not be overwritten")
	}
}

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	_, err = ParseOutputFormat("xml")
	assert.Error(t, err)
}
