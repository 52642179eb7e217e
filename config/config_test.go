package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/identitykit/aadhaar-extract/config"

	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse("")
	require.NoError(t, err)

	require.Equal(t, ":8000", cfg.Address)
	require.Equal(t, ".", cfg.ScratchDir)

	require.NotNil(t, cfg.Validator)
	require.NotNil(t, cfg.Renderer)
	require.NotNil(t, cfg.Extractor)
}

func TestParseMissingFile(t *testing.T) {
	cfg, err := config.Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, ":8000", cfg.Address)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	data := `
address: ":9090"
scratch_dir: "/tmp/scratch"
validate_schema: true

provider:
  token: ${TEST_GOOGLE_API_KEY}
  model: gemini-1.5-pro
`

	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	t.Setenv("TEST_GOOGLE_API_KEY", "test-key")

	cfg, err := config.Parse(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Address)
	require.Equal(t, "/tmp/scratch", cfg.ScratchDir)
}

func TestParseEnvFallback(t *testing.T) {
	t.Setenv("ADDRESS", ":7070")
	t.Setenv("SCRATCH_DIR", "/tmp/uploads")

	cfg, err := config.Parse("")
	require.NoError(t, err)

	require.Equal(t, ":7070", cfg.Address)
	require.Equal(t, "/tmp/uploads", cfg.ScratchDir)
}

func TestParseUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(path, []byte("bogus: true\n"), 0o600))

	_, err := config.Parse(path)
	require.Error(t, err)
}
