package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "#fff", cfg.UI.InitialColor)
	require.Equal(t, "start", cfg.UI.InitialLetter)
	require.True(t, cfg.UI.AltScreen)
	require.True(t, cfg.UI.Mouse)
	require.Equal(t, uint64(0), cfg.Random.Seed)
	require.Equal(t, "happy", cfg.Random.Palette)
	require.Equal(t, "abcdefghijklmnopqrstuvwxyz", cfg.Random.Alphabet)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Log.Path)
	require.Empty(t, cfg.Keys)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `
[ui]
initial_color = "#123456"
initial_letter = "go"
mouse = false

[random]
seed = 99
palette = "Warm"
alphabet = "xyz"

[[keys]]
scope = "app"
action = "color"
keys = ["x", "ctrl+x"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "#123456", cfg.UI.InitialColor)
	require.Equal(t, "go", cfg.UI.InitialLetter)
	require.False(t, cfg.UI.Mouse)
	require.True(t, cfg.UI.AltScreen)
	require.Equal(t, uint64(99), cfg.Random.Seed)
	require.Equal(t, "warm", cfg.Random.Palette)
	require.Equal(t, "xyz", cfg.Random.Alphabet)
	require.Equal(t, []KeyBinding{{Scope: "app", Action: "color", Keys: []string{"x", "ctrl+x"}}}, cfg.Keys)
}

func TestLoadSearchesUserConfigDir(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "colorletter", "config.toml"), "[ui]\ninitial_letter = \"found\"\n")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "found", cfg.UI.InitialLetter)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "nope.toml"))
	require.Error(t, err)
}

func TestLoadMalformedFileFails(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.toml")
	writeFile(t, path, "[ui\ninitial_color = ")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[ui]\ninitial_color = \"#000\"\n")
	t.Setenv("COLORLETTER_UI_INITIAL_COLOR", "#abcdef")
	t.Setenv("COLORLETTER_LOG_LEVEL", "DEBUG")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "#abcdef", cfg.UI.InitialColor)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadBlankValuesFallBackToDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[ui]\ninitial_color = \"  \"\ninitial_letter = \"\"\n[random]\npalette = \"\"\nalphabet = \" \"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "#fff", cfg.UI.InitialColor)
	require.Equal(t, "start", cfg.UI.InitialLetter)
	require.Equal(t, "happy", cfg.Random.Palette)
	require.Equal(t, "abcdefghijklmnopqrstuvwxyz", cfg.Random.Alphabet)
}

func TestSaveThenLoad(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := Default()
	cfg.UI.InitialLetter = "saved"
	cfg.Random.Seed = 7
	cfg.Log.Path = "-"
	cfg.Keys = []KeyBinding{{Scope: "app", Action: "letter", Keys: []string{"n"}}}
	require.NoError(t, Save(cfg, path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestEncodeWritesTOML(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Log.Path = "-"

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cfg))
	out := buf.String()
	require.Contains(t, out, "[ui]")
	require.Contains(t, out, `initial_color = "#fff"`)
	require.Contains(t, out, `initial_letter = "start"`)
	require.Contains(t, out, "[random]")
	require.Contains(t, out, `palette = "happy"`)
	require.NotContains(t, out, "[[keys]]")
}

func TestDefaultPath(t *testing.T) {
	dir := isolate(t)

	path, err := DefaultPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "colorletter", "config.toml"), path)
}
