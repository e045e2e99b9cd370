package tts

import "fmt"

// Config holds the configuration for the ElevenLabs client
//
// The API key is intentionally allowed to be empty at construction time:
// the credential is only required once a synthesis call is made, so a user
// can inspect templates or configuration without one.
type Config struct {
	APIKey       string `json:"api_key"`
	APIURL       string `json:"api_url"`
	VoiceID      string `json:"voice_id"`
	OutputFormat string `json:"output_format"`
	Timeout      int    `json:"timeout"`
}

// Validate validates the structural configuration
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("API URL is required")
	}
	if c.VoiceID == "" {
		return fmt.Errorf("voice ID is required")
	}
	if c.Timeout < 1 {
		return fmt.Errorf("timeout must be greater than 0")
	}
	return nil
}

// GetHeaders returns the headers for an ElevenLabs API request
func (c *Config) GetHeaders() map[string]string {
	return map[string]string{
		"xi-api-key":   c.APIKey,
		"Content-Type": "application/json",
	}
}
