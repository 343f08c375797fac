package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every env var that Load() reads.
var allConfigKeys = []string{
	"GITHUB_REPOSITORY",
	"GITHUB_OUTPUT",
	"STALESWEEP_DB_PATH",
}

// isolateConfigEnv saves and unsets all env vars Load reads so tests don't
// inherit values from the host environment (e.g. a real Actions runner).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("GITHUB_REPOSITORY", "acme/widgets")
	t.Setenv("GITHUB_OUTPUT", "/tmp/gh_output")
	t.Setenv("STALESWEEP_DB_PATH", "/tmp/test.db")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "acme", cfg.Repo.Owner)
	assert.Equal(t, "widgets", cfg.Repo.Name)
	assert.Equal(t, "/tmp/gh_output", cfg.OutputPath)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("GITHUB_REPOSITORY", "acme/widgets")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "", cfg.OutputPath)
	assert.Equal(t, "stalesweep.db", cfg.DBPath)
}

func TestLoad_MissingRepository(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_REPOSITORY")
}

func TestLoad_MalformedRepository(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("GITHUB_REPOSITORY", "just-a-name")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "just-a-name")
}
