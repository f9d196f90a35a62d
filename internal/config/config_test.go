package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultDir(t *testing.T) {
	cfg, err := New("")
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Dir)
	assert.Equal(t, filepath.Join("data", "kiwi.txt"), cfg.DataPath())
	assert.Equal(t, filepath.Join("data", "kiwi.yaml"), cfg.SettingsPath())
	assert.Equal(t, filepath.Join("data", "token.json"), cfg.TokenPath())
	assert.Equal(t, filepath.Join("data", "oauth_client.json"), cfg.OAuthClientPath())
}

func TestTokenFiles(t *testing.T) {
	cfg, _ := New(filepath.Join(t.TempDir(), "nested"))
	assert.False(t, cfg.HasToken())

	require.NoError(t, cfg.EnsureDir())
	require.NoError(t, os.WriteFile(cfg.TokenPath(), []byte("{}"), 0600))
	assert.True(t, cfg.HasToken())

	require.NoError(t, cfg.RemoveToken())
	assert.False(t, cfg.HasToken())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg, _ := New("")

	cfg.Logger(&buf).Print("hidden")
	assert.Empty(t, buf.String())

	cfg.Debug = true
	cfg.Logger(&buf).Print("shown")
	assert.Equal(t, "debug: shown\n", buf.String())
}

func TestLoadSettings_MissingUsesDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "kiwi.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Settings{TaskList: "Kiwi", Calendar: "primary", EventMinutes: 30}, *s)
}

func TestLoadSettings_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiwi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasklist: Chores\nevent_minutes: 45\n"), 0644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, Settings{TaskList: "Chores", Calendar: "primary", EventMinutes: 45}, *s)
}

func TestLoadSettings_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiwi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasklist: [unclosed\n"), 0644))

	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid kiwi.yaml")
}
