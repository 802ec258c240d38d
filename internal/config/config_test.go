package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TALLY_FILE", "TALLY_BACKEND", "TALLY_DB", "TALLY_MONTHLY_TARGET", "TALLY_LOG_USE_CASES", "TALLY_CONFIG"} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(dir, filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hours.csv"), cfg.File)
	assert.Equal(t, filepath.Join(dir, "tally.db"), cfg.DB)
	assert.Equal(t, BackendCSV, cfg.Backend)
	assert.Zero(t, cfg.MonthlyTarget)
	assert.False(t, cfg.LogUseCases)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: sqlite\ndb: /tmp/x.db\nmonthly_target: 160\n"), 0644))

	cfg, err := Load(dir, path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "/tmp/x.db", cfg.DB)
	assert.Equal(t, 160.0, cfg.MonthlyTarget)
	assert.Equal(t, filepath.Join(dir, "hours.csv"), cfg.File, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("file: from-file.csv\nmonthly_target: 100\n"), 0644))

	t.Setenv("TALLY_FILE", "from-env.csv")
	t.Setenv("TALLY_MONTHLY_TARGET", "120.5")
	t.Setenv("TALLY_LOG_USE_CASES", "true")

	cfg, err := Load(dir, path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.csv", cfg.File)
	assert.Equal(t, 120.5, cfg.MonthlyTarget)
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_IgnoresBadTargetEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("TALLY_MONTHLY_TARGET", "lots")

	cfg, err := Load(dir, filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)
	assert.Zero(t, cfg.MonthlyTarget)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [csv\n"), 0644))

	_, err := Load(dir, path)
	assert.Error(t, err)
}

func TestLoad_UnknownBackend(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("TALLY_BACKEND", "postgres")

	_, err := Load(dir, filepath.Join(dir, "config.yaml"))
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestDefaultPath(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, filepath.Join("/data", "config.yaml"), DefaultPath("/data"))

	t.Setenv("TALLY_CONFIG", "/etc/tally.yaml")
	assert.Equal(t, "/etc/tally.yaml", DefaultPath("/data"))
}
