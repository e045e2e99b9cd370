package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/shortreel/shortreel/pkg/log"
)

// Config holds all application configuration
// Supports environment variables with sensible defaults
//
// Environment Variables:
// TTS Configuration:
// - ELEVENLABS_API_KEY: ElevenLabs API key (checked at synthesis time)
// - ELEVENLABS_API_URL: API endpoint URL (default: https://api.elevenlabs.io)
// - TTS_VOICE_ID: Voice ID used for narration (default: bPz3YmDohVKx47H3m07y)
// - TTS_OUTPUT_FORMAT: Audio output format (default: mp3_44100_128)
// - TTS_TIMEOUT: Request timeout in seconds (default: 60)
//
// Media Configuration:
// - OUTPUT_DIR: Directory for rendered videos (default: out)
// - TEMPLATE_DIR: Directory holding background templates (default: templates)
// - SUBTITLE_FONT: Font file burned into subtitles (default: data/subtitle_font.otf)
// - NARRATOR_IMAGE: Overlay image anchored bottom-left (default: data/peter.png)
// - TAIL_PADDING: Seconds of video kept after the last subtitle (default: 2)
//
// System Configuration:
// - LOG_LEVEL: debug, info, warn, error or fatal (default: info)

type Config struct {
	// TTS Configuration
	TTS TTSConfig `json:"tts"`

	// Media Configuration
	Media MediaConfig `json:"media"`

	// System Configuration
	System SystemConfig `json:"system"`
}

// TTSConfig holds the configuration for the speech synthesis client
type TTSConfig struct {
	APIKey       string `json:"api_key"`
	APIURL       string `json:"api_url"`
	VoiceID      string `json:"voice_id"`
	OutputFormat string `json:"output_format"`
	Timeout      int    `json:"timeout"`
}

// MediaConfig holds the configuration for video composition
type MediaConfig struct {
	OutputDir     string  `json:"output_dir"`
	TemplateDir   string  `json:"template_dir"`
	SubtitleFont  string  `json:"subtitle_font"`
	NarratorImage string  `json:"narrator_image"`
	TailPadding   float64 `json:"tail_padding"`
}

// SystemConfig holds the system configuration
type SystemConfig struct {
	LogLevel string `json:"log_level"`
}

// Option is a function type for configuring Config
type Option func(*Config)

// NewFromEnv creates a new Config instance with values from environment
// variables and options. A .env file in the working directory is loaded
// first when present.
func NewFromEnv(opts ...Option) (*Config, error) {
	// Missing .env is not an error; the environment may be set directly.
	_ = godotenv.Load()

	config := &Config{
		TTS: TTSConfig{
			APIKey:       getEnvString("ELEVENLABS_API_KEY", ""),
			APIURL:       getEnvString("ELEVENLABS_API_URL", "https://api.elevenlabs.io"),
			VoiceID:      getEnvString("TTS_VOICE_ID", "bPz3YmDohVKx47H3m07y"),
			OutputFormat: getEnvString("TTS_OUTPUT_FORMAT", "mp3_44100_128"),
			Timeout:      getEnvInt("TTS_TIMEOUT", 60),
		},
		Media: MediaConfig{
			OutputDir:     getEnvString("OUTPUT_DIR", "out"),
			TemplateDir:   getEnvString("TEMPLATE_DIR", "templates"),
			SubtitleFont:  getEnvString("SUBTITLE_FONT", "data/subtitle_font.otf"),
			NarratorImage: getEnvString("NARRATOR_IMAGE", "data/peter.png"),
			TailPadding:   getEnvFloat("TAIL_PADDING", 2),
		},
		System: SystemConfig{
			LogLevel: getEnvString("LOG_LEVEL", "info"),
		},
	}

	// Apply custom options
	for _, opt := range opts {
		opt(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	log.GetLogger().SetLevel(log.ParseLevel(config.System.LogLevel))

	return config, nil
}

// validate checks structural configuration. The API key is deliberately not
// checked here; a missing credential surfaces when synthesis is attempted.
func (c *Config) validate() error {
	if c.TTS.APIURL == "" {
		return fmt.Errorf("ELEVENLABS_API_URL cannot be empty")
	}
	if c.TTS.VoiceID == "" {
		return fmt.Errorf("TTS_VOICE_ID cannot be empty")
	}
	if c.TTS.Timeout < 1 {
		return fmt.Errorf("TTS_TIMEOUT must be greater than 0")
	}
	if c.Media.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR cannot be empty")
	}
	if c.Media.TemplateDir == "" {
		return fmt.Errorf("TEMPLATE_DIR cannot be empty")
	}
	if c.Media.TailPadding < 0 {
		return fmt.Errorf("TAIL_PADDING cannot be negative")
	}
	return nil
}

// EnsureDirs creates the output and template directories if absent.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.Media.OutputDir, c.Media.TemplateDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets a float value from environment variables with default
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
