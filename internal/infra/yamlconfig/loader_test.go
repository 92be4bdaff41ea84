package yamlconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/J-Rios/boe-borme-downloader/internal/domain"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 8192, cfg.Mirror.ChunkSize)
	assert.Equal(t, 5*time.Second, cfg.HTTP.DialTimeout)
}

func TestLoadAppliesFileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boedl.yaml")
	content := `
base_url: https://mirror.example
http:
  dial_timeout: 2s
  max_idle_conns: 7
mirror:
  chunk_size: 4096
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.HTTP.DialTimeout)
	assert.Equal(t, 7, cfg.HTTP.MaxIdleConns)
	assert.Equal(t, 4096, cfg.Mirror.ChunkSize)

	// Untouched fields keep defaults.
	assert.Equal(t, 10*time.Second, cfg.HTTP.ResponseHeader)
}

func TestLoadDefaultFileNameInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("boedl.yaml", []byte("base_url: https://cwd.example\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://cwd.example", cfg.BaseURL)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
}

func TestLoadInvalidDurationFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boedl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  dial_timeout: soon\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BOE_BASE_URL", "https://env.example")
	t.Setenv("BOE_CHUNK_SIZE", "1024")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.BaseURL)
	assert.Equal(t, 1024, cfg.Mirror.ChunkSize)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boedl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: https://file.example\n"), 0o644))
	t.Setenv("BOE_BASE_URL", "https://env.example")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.BaseURL)
}
