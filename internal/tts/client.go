package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Client calls the ElevenLabs text-to-speech API. It requests synthesis
// together with character-level timestamps so that subtitles can be derived
// from the same response. Thread-safe for concurrent use.
type Client struct {
	config     *Config
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new ElevenLabs client with the given configuration
//
// Returns a new Client instance or an error if configuration is invalid
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	client := &Client{
		config:  config,
		baseURL: config.APIURL,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
	}

	return client, nil
}

// convertRequest is the request body for the with-timestamps endpoint
type convertRequest struct {
	Text string `json:"text"`
}

// convertResponse is the response body for the with-timestamps endpoint
type convertResponse struct {
	AudioBase64 string    `json:"audio_base64"`
	Alignment   Alignment `json:"alignment"`
	Detail      *struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"detail"`
}

// ConvertWithTimestamps synthesizes text with the configured voice and
// returns the audio together with its character alignment.
//
// A missing API key is reported here rather than at construction time.
// There is no retry; any transport or API failure is returned as-is.
func (c *Client) ConvertWithTimestamps(ctx context.Context, text string) (*SpeechResult, error) {
	if c.config.APIKey == "" {
		return nil, fmt.Errorf("ELEVENLABS_API_KEY is not set")
	}
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}

	path := fmt.Sprintf("/v1/text-to-speech/%s/with-timestamps?output_format=%s",
		url.PathEscape(c.config.VoiceID),
		url.QueryEscape(c.config.OutputFormat))

	response, err := c.makeRequest(ctx, http.MethodPost, path, convertRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(response.AudioBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio payload: %w", err)
	}

	return &SpeechResult{
		Audio:     audio,
		Alignment: response.Alignment,
	}, nil
}

// makeRequest makes a raw HTTP request to the ElevenLabs API
func (c *Client) makeRequest(ctx context.Context, method, path string, payload interface{}) (*convertResponse, error) {
	requestURL := c.baseURL + path

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range c.config.GetHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if os.IsTimeout(err) {
			return nil, fmt.Errorf("request timed out: %w", err)
		}
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API request failed with status %d: %s",
			resp.StatusCode, truncate(string(responseBody), 512))
	}

	var response convertResponse
	if err := json.Unmarshal(responseBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if response.Detail != nil && response.Detail.Message != "" {
		return nil, fmt.Errorf("API error %s: %s", response.Detail.Status, response.Detail.Message)
	}

	return &response, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
