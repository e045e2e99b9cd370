package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteASS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narration.ass")
	entries := []Entry{
		{Text: "hi", Start: 0.0, Duration: 0.2},
		{Text: "there", Start: 0.3, Duration: 0.5},
	}

	style := DefaultStyle("data/subtitle_font.otf", 1080, 1920)
	require.NoError(t, WriteASS(path, entries, style))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)

	assert.Contains(t, content, "[Script Info]")
	assert.Contains(t, content, "PlayResX: 1080")
	assert.Contains(t, content, "PlayResY: 1920")
	assert.Contains(t, content, "Style: Narration,subtitle_font,70,")
	assert.Contains(t, content, "Dialogue: 0,0:00:00.00,0:00:00.20,Narration,,0,0,0,,hi")
	assert.Contains(t, content, "Dialogue: 0,0:00:00.30,0:00:00.80,Narration,,0,0,0,,there")

	// One dialogue line per entry.
	assert.Equal(t, 2, strings.Count(content, "Dialogue:"))
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00:00.00"},
		{0.2, "0:00:00.20"},
		{61.5, "0:01:01.50"},
		{3661.25, "1:01:01.25"},
		{-1, "0:00:00.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatTimestamp(tt.seconds))
	}
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, "a(b)c", escapeText("a{b}c"))
	assert.Equal(t, "a\\Nb", escapeText("a\nb"))
	assert.Equal(t, "a\\\\b", escapeText("a\\b"))
}

func TestDetectLanguage(t *testing.T) {
	english := DetectLanguage("The quick brown fox jumps over the lazy dog every single morning.")
	assert.Equal(t, "en", english.String())

	japanese := DetectLanguage("こんにちは世界、今日はいい天気ですね。")
	assert.Equal(t, "ja", japanese.String())
}
