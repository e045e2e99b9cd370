package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/shortreel/shortreel/pkg/file"
	"github.com/shortreel/shortreel/pkg/log"
)

// portrait aspect ratio of the rendered video
const (
	aspectW = 9
	aspectH = 16
)

// Narrator overlay placement, relative to the cropped frame. The image is
// scaled to half the frame height and pushed partly off the left and
// bottom edges.
const (
	narratorPadX = -40
	narratorPadY = 100
)

type ffmpeg struct {
	ffmpegCmd  string
	ffprobeCmd string
}

func NewFfmpeg() ffmpeg {
	return ffmpeg{
		ffmpegCmd:  "ffmpeg",
		ffprobeCmd: "ffprobe",
	}
}

// Probe reads the dimensions and duration of the first video stream.
func (ff ffmpeg) Probe(ctx context.Context, path string) (ProbeResult, error) {
	cmdPath, err := exec.LookPath(ff.ffprobeCmd)
	if err != nil {
		return ProbeResult{}, err
	}
	cmd := exec.CommandContext(ctx, cmdPath, ff.probeArgs(path)...)

	output, err := cmd.Output()
	if err != nil {
		log.Error("Failed to run ffprobe on %s: %v", path, err)
		return ProbeResult{}, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}

	return parseProbeOutput(output)
}

// Compose renders the final video in two steps: the narration audio is
// first transcoded to an AAC intermediate, then a single ffmpeg invocation
// crops the template, overlays the narrator image, burns the subtitle
// track and muxes the audio.
func (ff ffmpeg) Compose(ctx context.Context, job Job) error {
	probe, err := ff.Probe(ctx, job.TemplatePath)
	if err != nil {
		return err
	}

	muxAudio := file.ReplaceExt(job.AudioPath, ".m4a")
	if err := ff.run(ctx, ff.ffmpegCmd, ff.audioArgs(job.AudioPath, muxAudio)); err != nil {
		return fmt.Errorf("audio transcode failed: %w", err)
	}
	defer os.Remove(muxAudio)

	if err := ff.run(ctx, ff.ffmpegCmd, ff.composeArgs(job, probe, muxAudio)); err != nil {
		return fmt.Errorf("video composition failed: %w", err)
	}

	return nil
}

func (ff ffmpeg) probeArgs(path string) []string {
	return []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		path,
	}
}

func (ff ffmpeg) audioArgs(in, out string) []string {
	return []string{
		"-y",
		"-i", in,
		"-c:a", "aac",
		out,
	}
}

func (ff ffmpeg) composeArgs(job Job, probe ProbeResult, muxAudio string) []string {
	return []string{
		"-y",
		"-i", job.TemplatePath,
		"-loop", "1",
		"-i", job.NarratorImage,
		"-i", muxAudio,
		"-filter_complex", buildFilterGraph(job, probe),
		"-map", "[vout]",
		"-map", "2:a",
		"-c:v", "libx264",
		"-c:a", "copy",
		"-t", formatSeconds(job.Duration),
		job.OutputPath,
	}
}

// buildFilterGraph assembles the filter chain: centered portrait crop,
// narrator overlay at half frame height, burned ASS subtitles.
func buildFilterGraph(job Job, probe ProbeResult) string {
	crop := CropRect(probe.Width, probe.Height)
	narratorH := crop.H / 2
	overlayY := crop.H - narratorH + narratorPadY

	parts := []string{
		fmt.Sprintf("[0:v]crop=%d:%d:%d:%d[cropped]", crop.W, crop.H, crop.X, crop.Y),
		fmt.Sprintf("[1:v]scale=-2:%d[narrator]", narratorH),
		fmt.Sprintf("[cropped][narrator]overlay=%d:%d[framed]", narratorPadX, overlayY),
		fmt.Sprintf("[framed]ass=filename=%s:fontsdir=%s[vout]",
			quoteFilterArg(job.SubtitlePath), quoteFilterArg(job.FontsDir)),
	}
	return strings.Join(parts, ";")
}

// CropRect computes the centered 9:16 crop window for a source frame. The
// full source height is kept; the width is narrowed around the horizontal
// center. Sources already narrower than 9:16 are left at full width.
func CropRect(width, height int) Rect {
	targetW := int(math.Round(float64(height) * aspectW / aspectH))
	if targetW > width {
		targetW = width
	}

	x := (width - targetW) / 2
	if x < 0 {
		x = 0
	}

	return Rect{W: targetW, H: height, X: x, Y: 0}
}

// quoteFilterArg quotes a value for use inside a filtergraph, where colons
// and commas are structural.
func quoteFilterArg(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}

// run executes a command, surfacing the tail of stderr on failure.
func (ff ffmpeg) run(ctx context.Context, name string, args []string) error {
	cmdPath, err := exec.LookPath(name)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, cmdPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log.Debug("Running %s %s", name, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w: %s", name, err, tail(stderr.String(), 512))
	}
	return nil
}

func tail(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}

// parseProbeOutput decodes ffprobe JSON, taking dimensions from the first
// video stream and the duration from the container format.
func parseProbeOutput(output []byte) (ProbeResult, error) {
	var probeResult struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
		} `json:"streams"`
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}

	if err := json.Unmarshal(output, &probeResult); err != nil {
		return ProbeResult{}, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	result := ProbeResult{}
	for _, stream := range probeResult.Streams {
		if stream.CodecType == "video" {
			result.Width = stream.Width
			result.Height = stream.Height
			break
		}
	}

	if result.Width == 0 || result.Height == 0 {
		return ProbeResult{}, fmt.Errorf("no video stream found")
	}

	if probeResult.Format.Duration != "" {
		if d, err := strconv.ParseFloat(probeResult.Format.Duration, 64); err == nil {
			result.Duration = d
		}
	}

	return result, nil
}
