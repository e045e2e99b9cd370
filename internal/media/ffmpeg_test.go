package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCropRect(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   Rect
	}{
		{
			name:  "landscape 1920x1080",
			width: 1920, height: 1080,
			// 1080 * 9/16 = 607.5, rounded to 608, centered.
			want: Rect{W: 608, H: 1080, X: 656, Y: 0},
		},
		{
			name:  "square source",
			width: 1000, height: 1000,
			want: Rect{W: 563, H: 1000, X: 218, Y: 0},
		},
		{
			name:  "already portrait",
			width: 500, height: 1920,
			// Narrower than 9:16, kept at full width.
			want: Rect{W: 500, H: 1920, X: 0, Y: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CropRect(tt.width, tt.height))
		})
	}
}

func TestBuildFilterGraph(t *testing.T) {
	job := Job{
		SubtitlePath:  "/tmp/narration.ass",
		FontsDir:      "data",
		NarratorImage: "data/peter.png",
	}
	probe := ProbeResult{Width: 1920, Height: 1080}

	graph := buildFilterGraph(job, probe)
	parts := strings.Split(graph, ";")
	require.Len(t, parts, 4)

	assert.Equal(t, "[0:v]crop=608:1080:656:0[cropped]", parts[0])
	assert.Equal(t, "[1:v]scale=-2:540[narrator]", parts[1])
	// Overlay sits 40px off the left edge and 100px below the bottom.
	assert.Equal(t, "[cropped][narrator]overlay=-40:640[framed]", parts[2])
	assert.Equal(t, "[framed]ass=filename='/tmp/narration.ass':fontsdir='data'[vout]", parts[3])
}

func TestComposeArgs(t *testing.T) {
	ff := NewFfmpeg()
	job := Job{
		TemplatePath:  "templates/bg.mp4",
		AudioPath:     "out/audio.mp3",
		SubtitlePath:  "out/audio.ass",
		FontsDir:      "data",
		NarratorImage: "data/peter.png",
		OutputPath:    "out/final.mp4",
		Duration:      12.5,
	}

	args := ff.composeArgs(job, ProbeResult{Width: 1920, Height: 1080}, "out/audio.m4a")

	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-i templates/bg.mp4")
	assert.Contains(t, joined, "-loop 1 -i data/peter.png")
	assert.Contains(t, joined, "-i out/audio.m4a")
	assert.Contains(t, joined, "-c:v libx264")
	assert.Contains(t, joined, "-c:a copy")
	assert.Contains(t, joined, "-t 12.500")
	assert.Equal(t, "out/final.mp4", args[len(args)-1])
}

func TestAudioArgs(t *testing.T) {
	ff := NewFfmpeg()
	args := ff.audioArgs("out/audio.mp3", "out/audio.m4a")
	assert.Equal(t, []string{"-y", "-i", "out/audio.mp3", "-c:a", "aac", "out/audio.m4a"}, args)
}

func TestParseProbeOutput(t *testing.T) {
	raw := []byte(`{
		"streams": [
			{"codec_type": "audio", "codec_name": "aac"},
			{"codec_type": "video", "width": 1280, "height": 720}
		],
		"format": {"duration": "42.300000"}
	}`)

	probe, err := parseProbeOutput(raw)
	require.NoError(t, err)
	assert.Equal(t, 1280, probe.Width)
	assert.Equal(t, 720, probe.Height)
	assert.InDelta(t, 42.3, probe.Duration, 1e-9)
}

func TestParseProbeOutput_NoVideoStream(t *testing.T) {
	raw := []byte(`{"streams": [{"codec_type": "audio"}], "format": {}}`)
	_, err := parseProbeOutput(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no video stream")
}

func TestParseProbeOutput_Malformed(t *testing.T) {
	_, err := parseProbeOutput([]byte("not json"))
	require.Error(t, err)
}

func TestQuoteFilterArg(t *testing.T) {
	assert.Equal(t, "'a b'", quoteFilterArg("a b"))
	assert.Equal(t, `'it\'s'`, quoteFilterArg("it's"))
}
