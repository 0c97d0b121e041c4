package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no INV_* variable set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	t.Setenv("HOME", dir)
	for _, key := range []string{KeyFile, KeyCurrency, KeyLogLevel, KeyLogFormat} {
		t.Setenv(Env(key), "")
		os.Unsetenv(Env(key))
	}
	t.Setenv(EnvConfigFile, "")
	os.Unsetenv(EnvConfigFile)
	return dir
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("inv", flag.ContinueOnError)
	fs.String(KeyFile, DefaultFile, "")
	fs.String(KeyCurrency, DefaultCurrency, "")
	fs.String(KeyLogLevel, DefaultLogLevel, "")
	fs.String(KeyLogFormat, DefaultLogFormat, "")
	fs.Bool("unrelated", false, "")
	return fs
}

func TestEnv(t *testing.T) {
	assert.Equal(t, "INV_FILE", Env(KeyFile))
	assert.Equal(t, "INV_LOG_LEVEL", Env(KeyLogLevel))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(newFlagSet())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("INV_FILE", "shop.json")
	t.Setenv("INV_CURRENCY", "EUR")
	t.Setenv("INV_LOG_LEVEL", "debug")

	fs := newFlagSet()
	require.NoError(t, fs.Parse(nil))
	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "shop.json", cfg.File)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
}

func TestLoadFlagsWinOverEnv(t *testing.T) {
	isolate(t)
	t.Setenv("INV_FILE", "shop.json")
	t.Setenv("INV_CURRENCY", "EUR")

	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"-file", "flag.json", "-unrelated"}))
	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "flag.json", cfg.File)
	assert.Equal(t, "EUR", cfg.Currency, "an unset flag must not hide the environment")
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	content := "file: from-file.json\ncurrency: GBP\nlog-format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inv.yaml"), []byte(content), 0644))
	t.Setenv("INV_CURRENCY", "JPY")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-file.json", cfg.File)
	assert.Equal(t, "JPY", cfg.Currency, "the environment wins over the config file")
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadExplicitConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("file: custom.json\n"), 0644))
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "custom.json", cfg.File)

	t.Setenv(EnvConfigFile, filepath.Join(dir, "missing.yaml"))
	_, err = Load(nil)
	assert.Error(t, err)
}

func TestLoadInvalidCurrency(t *testing.T) {
	isolate(t)
	t.Setenv("INV_CURRENCY", "NOPE")
	_, err := Load(nil)
	assert.ErrorContains(t, err, "unknown currency")
}
