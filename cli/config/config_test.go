package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func auditFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("audit", pflag.ContinueOnError)
	fs.String("project", "", "")
	fs.Int("days", 90, "")
	fs.String("locations", "US,EU", "")
	fs.Int("limit", 1000, "")
	fs.Int("topn", 5, "")
	fs.String("outfile", "bq_job_stats.csv", "")

	return fs
}

func TestLoadDefaults(t *testing.T) {
	fs := auditFlags()
	require.NoError(t, fs.Set("project", "proj"))

	cfg, err := Load("", fs, nil)

	require.NoError(t, err)
	assert.Equal(t, "proj", cfg.Project)
	assert.Equal(t, 90, cfg.Days)
	assert.Equal(t, "US,EU", cfg.Locations)
	assert.Equal(t, 1000, cfg.Limit)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, "bq_job_stats.csv", cfg.OutFile)
	assert.Equal(t, 8082, cfg.Port)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
}

func TestLoadCommandOverrides(t *testing.T) {
	fs := auditFlags()
	require.NoError(t, fs.Set("project", "proj"))

	cfg, err := Load("", fs, map[string]interface{}{
		"days":    3,
		"limit":   200,
		"outfile": "analysis_out/all_job_inspector.txt",
	})

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Days)
	assert.Equal(t, 200, cfg.Limit)
	assert.Equal(t, "analysis_out/all_job_inspector.txt", cfg.OutFile)
}

func TestLoadPrecedence(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bq-audit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("project: from-file\ndays: 7\nlimit: 50\n"), 0o644))

	t.Setenv("BQAUDIT_DAYS", "14")

	fs := auditFlags()
	require.NoError(t, fs.Set("days", "30"))

	cfg, err := Load(cfgPath, fs, nil)

	require.NoError(t, err)

	// file beats defaults, env beats file, explicit flag beats env
	assert.Equal(t, "from-file", cfg.Project)
	assert.Equal(t, 50, cfg.Limit)
	assert.Equal(t, 30, cfg.Days)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bq-audit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("project: from-file\ndays: 7\n"), 0o644))

	t.Setenv("BQAUDIT_DAYS", "14")

	cfg, err := Load(cfgPath, auditFlags(), nil)

	require.NoError(t, err)
	assert.Equal(t, 14, cfg.Days)
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing project", func(t *testing.T) {
		_, err := Load("", auditFlags(), nil)
		assert.ErrorContains(t, err, "invalid configuration")
	})

	t.Run("non-positive limit", func(t *testing.T) {
		fs := auditFlags()
		require.NoError(t, fs.Set("project", "proj"))
		require.NoError(t, fs.Set("limit", "0"))

		_, err := Load("", fs, nil)
		assert.ErrorContains(t, err, "invalid configuration")
	})

	t.Run("unset flags do not override config file", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "bq-audit.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("project: proj\ntopn: 9\n"), 0o644))

		cfg, err := Load(cfgPath, auditFlags(), nil)

		require.NoError(t, err)
		assert.Equal(t, 9, cfg.TopN)
	})
}
