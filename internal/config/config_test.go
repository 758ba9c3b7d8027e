package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PACKRAT_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, filepath.Join(home, ".local", "share", "packrat", "packrat.log"), cfg.Logging.File)
	require.True(t, cfg.UI.ShowDescriptions)
	require.Equal(t, 3, cfg.UI.Columns)
	require.False(t, cfg.UI.DemoItems)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	toml := `
[logging]
level = "debug"
file = "/tmp/packrat.log"

[ui]
show_descriptions = false
columns = 2
demo_items = true
`
	require.NoError(t, os.WriteFile(path, []byte(toml), 0o644))
	t.Setenv("PACKRAT_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "/tmp/packrat.log", cfg.Logging.File)
	require.False(t, cfg.UI.ShowDescriptions)
	require.Equal(t, 2, cfg.UI.Columns)
	require.True(t, cfg.UI.DemoItems)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	toml := `
[logging]
level = "debug"

[ui]
columns = 4
`
	require.NoError(t, os.WriteFile(path, []byte(toml), 0o644))
	t.Setenv("PACKRAT_CONFIG", path)
	t.Setenv("PACKRAT_LOGGING_LEVEL", "warn")
	t.Setenv("PACKRAT_UI_COLUMNS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "warn", cfg.Logging.Level)
	require.Equal(t, 2, cfg.UI.Columns)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("PACKRAT_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "info", cfg.Logging.Level)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packrat", "config.toml")
	t.Setenv("PACKRAT_CONFIG", path)

	in := Config{
		Logging: LoggingConfig{Level: "debug", File: "/tmp/p.log"},
		UI:      UIConfig{ShowDescriptions: false, Columns: 4, DemoItems: true},
	}
	require.NoError(t, Save(in))

	out, err := Load()
	require.NoError(t, err)
	require.Equal(t, in, out)
}
