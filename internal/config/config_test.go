package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, StoreFile, cfg.Store)
	assert.Equal(t, "default_user", cfg.DefaultUser)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "data_dir: /tmp/pw\nstore: sqlite\ndefault_user: alice\nsearch:\n  tavily_api_key: tv-123\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/pw", cfg.DataDir)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "alice", cfg.DefaultUser)
	assert.Equal(t, "tv-123", cfg.Search.TavilyAPIKey)
	assert.Equal(t, filepath.Join("/tmp/pw", "user_profiles"), cfg.ProfilesDir())
	assert.Equal(t, filepath.Join("/tmp/pw", "pathwise.db"), cfg.DBPath())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: file\ndefault_user: alice\n"), 0o644))

	t.Setenv("PATHWISE_STORE", "sqlite")
	t.Setenv("PATHWISE_USER", "bob")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "bob", cfg.DefaultUser)
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: redis\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
