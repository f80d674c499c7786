package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseEmptyContentKeepsDefaults(t *testing.T) {
	cfg, warnings, err := Parse("", Default())
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, Default(), cfg)
}

func TestParseOverlaysFileValues(t *testing.T) {
	content := `
default_city: Berlin
history_size: 8
ai:
  enable: false
  model: gemini-2.5-pro
speech:
  enable: true
  speak_cmd: "espeak -v en-gb"
browser_cmd: "firefox --new-tab"
weather:
  base_url: https://wttr.example
`
	cfg, _, err := Parse(content, Default())
	require.NoError(t, err)

	require.Equal(t, "Berlin", cfg.DefaultCity)
	require.Equal(t, 8, cfg.HistorySize)
	require.False(t, cfg.AI.Enable)
	require.Equal(t, "gemini-2.5-pro", cfg.AI.Model)
	require.True(t, cfg.Speech.Enable)
	require.Equal(t, []string{"espeak", "-v", "en-gb"}, cfg.Speech.SpeakCmd.Argv)
	require.Equal(t, []string{"firefox", "--new-tab"}, cfg.Browser.Argv)
	require.Equal(t, "https://wttr.example", cfg.Weather.BaseURL)
	// untouched fields keep their defaults
	require.Equal(t, Default().Wiki.BaseURL, cfg.Wiki.BaseURL)
	require.Equal(t, Default().AI.TimeoutSeconds, cfg.AI.TimeoutSeconds)
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, _, err := Parse("default_city: [unclosed", Default())
	require.Error(t, err)
}

func TestParseRejectsUnbalancedCommandQuote(t *testing.T) {
	_, _, err := Parse(`browser_cmd: "firefox '--new"`, Default())
	require.Error(t, err)
}

func TestLoadMissingFileWarnsAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	loaded, err := Load(path)
	require.NoError(t, err)
	require.False(t, loaded.Exists)
	require.Equal(t, path, loaded.Path)
	require.NotEmpty(t, loaded.Warnings)
	require.Equal(t, Default().DefaultCity, loaded.Config.DefaultCity)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_city: Oslo\n"), 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.True(t, loaded.Exists)
	require.Equal(t, "Oslo", loaded.Config.DefaultCity)
}

func TestLoadEnvOverridesCity(t *testing.T) {
	t.Setenv("PARLEY_DEFAULT_CITY", "Reykjavik")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_city: Oslo\n"), 0o600))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Reykjavik", loaded.Config.DefaultCity)
}

func TestLoadReadsAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	path := filepath.Join(t.TempDir(), "config.yaml")

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "test-key", loaded.Config.AI.APIKey)
}
