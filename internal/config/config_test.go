package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parasols/maxclique/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Threads)
	assert.Equal(t, "dimacs", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.WorkDonation)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("MAXCLIQUE_THREADS", "8")
	t.Setenv("MAXCLIQUE_WORK_DONATION", "true")

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Threads)
	assert.True(t, cfg.WorkDonation)
}

func TestLoadMissingConfigFileIsNotAnError(t *testing.T) {
	cfg, err := config.Load("/no/such/path/config.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Threads)
}

func TestLoadFromFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "maxclique-config-*.yaml")
	require.NoError(t, err)
	_, err = f.WriteString("threads: 4\nformat: pairs\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	cfg, err := config.Load(f.Name(), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Threads)
	assert.Equal(t, "pairs", cfg.Format)
}
