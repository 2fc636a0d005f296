package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)

	assert.Equal(t, "blog-checker", cfg.Service.Name)
	assert.Equal(t, 8080, cfg.Service.Port)
	assert.Equal(t, 15, cfg.Review.MinImages)
	assert.Contains(t, cfg.Review.CompetitorKeywords, "카페24")
	assert.Contains(t, cfg.Review.SuspiciousKeywords, "해드림")
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.Model)
	assert.Equal(t, 20*time.Second, cfg.LLM.Timeout)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := `
service:
  port: 9090
review:
  min_images: 5
  haedream_keywords:
    - 해드림
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Service.Port)
	assert.Equal(t, 5, cfg.Review.MinImages)
	assert.Equal(t, []string{"해드림"}, cfg.Review.HaedreamKeywords)
	// untouched sections still get defaults
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.NotEmpty(t, cfg.Review.B2BKeywords)
}

func TestEnvOverridesWin(t *testing.T) {
	t.Setenv("CHECKER_PORT", "7070")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Service.Port)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("service: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGetConfigPath(t *testing.T) {
	assert.Equal(t, "config.yml", GetConfigPath("config.yml"))

	t.Setenv("CONFIG_PATH", "/etc/checker/config.yml")
	assert.Equal(t, "/etc/checker/config.yml", GetConfigPath("config.yml"))
}
