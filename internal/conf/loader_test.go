package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Host string `env:"SAMPLE_HOST" env-default:"localhost"`
	Port int    `env:"SAMPLE_PORT" env-default:"8080" validate:"gt=0"`
	Name string `env:"SAMPLE_NAME" validate:"required"`
}

func TestLoader_EnvOnly(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "tote")
	t.Setenv("SAMPLE_PORT", "9090")

	var cfg sampleConfig
	err := NewLoader(WithFile("")).Load(&cfg)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "tote", cfg.Name)
}

func TestLoader_FileFillsGaps(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app.env")
	require.NoError(t, os.WriteFile(file, []byte("SAMPLE_NAME=from-file\nSAMPLE_HOST=filehost\n"), 0o600))

	t.Setenv("SAMPLE_HOST", "envhost")

	var cfg sampleConfig
	err := NewLoader(WithFile(file)).Load(&cfg)
	require.NoError(t, err)

	// Environment wins over the file; the file supplies what is missing.
	assert.Equal(t, "envhost", cfg.Host)
	assert.Equal(t, "from-file", cfg.Name)
}

func TestLoader_MissingFileIgnored(t *testing.T) {
	t.Setenv("SAMPLE_NAME", "tote")

	var cfg sampleConfig
	err := NewLoader(WithFile("does-not-exist.env")).Load(&cfg)
	require.NoError(t, err)
	assert.Equal(t, "tote", cfg.Name)
}

func TestLoader_ValidationFailure(t *testing.T) {
	var cfg sampleConfig
	err := NewLoader(WithFile("")).Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate")
}

func TestLoader_RejectsNonPointer(t *testing.T) {
	err := NewLoader(WithFile("")).Load(sampleConfig{})
	require.Error(t, err)
}
