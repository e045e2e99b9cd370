package media

import "context"

// ProbeResult describes the video stream of a template file.
type ProbeResult struct {
	Width    int
	Height   int
	Duration float64 // seconds
}

// Rect is a crop window inside a source frame.
type Rect struct {
	W int
	H int
	X int
	Y int
}

// Job describes one composition: a background template cropped to
// portrait, a narrator image overlay, a burned subtitle track and the
// narration audio, rendered to OutputPath.
type Job struct {
	TemplatePath  string
	AudioPath     string  // narration audio written by the renderer
	SubtitlePath  string  // ASS track matching the cropped frame
	FontsDir      string  // directory holding the subtitle font
	NarratorImage string  // still image anchored bottom-left
	OutputPath    string
	Duration      float64 // seconds of final video
}

// Composer is the boundary to the video composition backend.
type Composer interface {
	Probe(ctx context.Context, path string) (ProbeResult, error)
	Compose(ctx context.Context, job Job) error
}

func NewComposer() Composer {
	return NewFfmpeg()
}
