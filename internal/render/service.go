package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/shortreel/shortreel/internal/config"
	"github.com/shortreel/shortreel/internal/media"
	"github.com/shortreel/shortreel/internal/subtitle"
	"github.com/shortreel/shortreel/internal/tts"
	"github.com/shortreel/shortreel/pkg/file"
	"github.com/shortreel/shortreel/pkg/log"
)

// TemplatePicker selects a background template file.
type TemplatePicker interface {
	Pick() (string, error)
}

// Service runs the full pipeline: synthesize narration, derive word-level
// subtitles from the character alignment, then compose everything over a
// background template. Stages run strictly in sequence.
type Service struct {
	cfg      config.Config
	synth    tts.Synthesizer
	picker   TemplatePicker
	composer media.Composer
}

func NewService(
	cfg config.Config,
	synth tts.Synthesizer,
	picker TemplatePicker,
	composer media.Composer,
) Service {
	return Service{
		cfg:      cfg,
		synth:    synth,
		picker:   picker,
		composer: composer,
	}
}

// Run generates a video for text and returns the rendered file's path.
// outputName is the file name inside the configured output directory.
func (s Service) Run(ctx context.Context, text, outputName string) (string, error) {
	// Fail on a missing template before spending an API call.
	templatePath, err := s.picker.Pick()
	if err != nil {
		return "", WrapError(err, ErrResourceNotFound, "no background template available")
	}
	log.Info("Using template %s", templatePath)

	if tag := subtitle.DetectLanguage(text); tag != language.Und && tag != language.English {
		log.Warn("Input looks like %s; word boundaries assume ASCII spaces", tag)
	}

	result, err := s.synth.ConvertWithTimestamps(ctx, text)
	if err != nil {
		return "", WrapError(err, ErrAPI, "speech synthesis failed")
	}
	log.Info("Generated audio with %d character timestamps", len(result.Alignment.Characters))

	entries := subtitle.Segment(result.Alignment)
	log.Info("Generated %d subtitle entries", len(entries))

	// A max over zero entries has no meaningful video duration; stop with
	// a descriptive error instead of rendering a silent clip.
	if len(entries) == 0 {
		return "", NewError(ErrEmptySubtitles,
			fmt.Sprintf("synthesized text %q produced no timed words", text))
	}

	audioPath := filepath.Join(s.cfg.Media.OutputDir, fmt.Sprintf("__temp-%s.mp3", uuid.NewString()))
	if err := os.WriteFile(audioPath, result.Audio, 0644); err != nil {
		return "", WrapError(err, ErrFileWrite, "failed to write narration audio")
	}
	defer os.Remove(audioPath)

	probe, err := s.composer.Probe(ctx, templatePath)
	if err != nil {
		return "", WrapError(err, ErrRender, "failed to probe template")
	}
	crop := media.CropRect(probe.Width, probe.Height)

	subtitlePath := file.ReplaceExt(audioPath, ".ass")
	style := subtitle.DefaultStyle(s.cfg.Media.SubtitleFont, crop.W, crop.H)
	if err := subtitle.WriteASS(subtitlePath, entries, style); err != nil {
		return "", WrapError(err, ErrFileWrite, "failed to write subtitle track")
	}
	defer os.Remove(subtitlePath)

	outputPath := filepath.Join(s.cfg.Media.OutputDir, outputName)
	job := media.Job{
		TemplatePath:  templatePath,
		AudioPath:     audioPath,
		SubtitlePath:  subtitlePath,
		FontsDir:      filepath.Dir(s.cfg.Media.SubtitleFont),
		NarratorImage: s.cfg.Media.NarratorImage,
		OutputPath:    outputPath,
		Duration:      subtitle.TailEnd(entries) + s.cfg.Media.TailPadding,
	}

	if err := s.composer.Compose(ctx, job); err != nil {
		return "", WrapError(err, ErrRender, "video composition failed")
	}

	return outputPath, nil
}
