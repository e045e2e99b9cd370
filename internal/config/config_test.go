package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEnv_Defaults(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("TEMPLATE_DIR", "")

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://api.elevenlabs.io", cfg.TTS.APIURL)
	assert.Equal(t, "bPz3YmDohVKx47H3m07y", cfg.TTS.VoiceID)
	assert.Equal(t, "mp3_44100_128", cfg.TTS.OutputFormat)
	assert.Equal(t, 60, cfg.TTS.Timeout)
	assert.Equal(t, "out", cfg.Media.OutputDir)
	assert.Equal(t, "templates", cfg.Media.TemplateDir)
	assert.Equal(t, 2.0, cfg.Media.TailPadding)
	assert.Empty(t, cfg.TTS.APIKey, "missing credential must not fail config loading")
}

func TestNewFromEnv_Overrides(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "test-key")
	t.Setenv("ELEVENLABS_API_URL", "http://localhost:9999")
	t.Setenv("TTS_VOICE_ID", "narrator-1")
	t.Setenv("TTS_TIMEOUT", "15")
	t.Setenv("OUTPUT_DIR", "/tmp/reels")
	t.Setenv("TAIL_PADDING", "1.5")

	cfg, err := NewFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.TTS.APIKey)
	assert.Equal(t, "http://localhost:9999", cfg.TTS.APIURL)
	assert.Equal(t, "narrator-1", cfg.TTS.VoiceID)
	assert.Equal(t, 15, cfg.TTS.Timeout)
	assert.Equal(t, "/tmp/reels", cfg.Media.OutputDir)
	assert.Equal(t, 1.5, cfg.Media.TailPadding)
}

func TestNewFromEnv_InvalidTimeout(t *testing.T) {
	t.Setenv("TTS_TIMEOUT", "0")

	_, err := NewFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TTS_TIMEOUT")
}

func TestNewFromEnv_Options(t *testing.T) {
	cfg, err := NewFromEnv(func(c *Config) {
		c.Media.TemplateDir = "/srv/templates"
	})
	require.NoError(t, err)
	assert.Equal(t, "/srv/templates", cfg.Media.TemplateDir)
}

func TestEnsureDirs(t *testing.T) {
	base := t.TempDir()
	cfg := &Config{
		Media: MediaConfig{
			OutputDir:   filepath.Join(base, "out"),
			TemplateDir: filepath.Join(base, "templates"),
		},
	}

	require.NoError(t, cfg.EnsureDirs())
	assert.DirExists(t, cfg.Media.OutputDir)
	assert.DirExists(t, cfg.Media.TemplateDir)
}
