package heredity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "heredity.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.Decimals)
	assert.Equal(t, DefaultMaxPopulation, cfg.MaxPopulation)
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "workers: 8\nformat: tsv\ndatabase: /tmp/results.db\n"))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "tsv", cfg.Format)
	assert.Equal(t, "/tmp/results.db", cfg.Database)
	// Unset keys keep their defaults.
	assert.Equal(t, 4, cfg.Decimals)
	assert.Equal(t, Options{Workers: 8, MaxPopulation: DefaultMaxPopulation}, cfg.Options())
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "wrokers: 2\n",
		"bad format":    "format: xml\n",
		"too many":      "max_population: 40\n",
		"negative":      "decimals: -1\n",
		"not a mapping": "- 1\n- 2\n",
	}
	for name, body := range cases {
		_, err := LoadConfig(writeConfig(t, body))
		assert.Error(t, err, name)
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
