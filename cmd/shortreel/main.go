package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shortreel/shortreel/internal/config"
	"github.com/shortreel/shortreel/internal/media"
	"github.com/shortreel/shortreel/internal/render"
	"github.com/shortreel/shortreel/internal/template"
	"github.com/shortreel/shortreel/internal/tts"
	"github.com/shortreel/shortreel/pkg/log"
)

func newRootCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "shortreel [text]",
		Short: "Generate a narrated vertical short from text",
		Long: `shortreel synthesizes speech for the given text, derives word-level
subtitles from the character timestamps and composes them over a random
background template from the template directory.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "default.mp4", "output file name")

	return cmd
}

func run(cmd *cobra.Command, text, output string) error {
	cfg, err := config.NewFromEnv()
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	synth, err := tts.NewClient(&tts.Config{
		APIKey:       cfg.TTS.APIKey,
		APIURL:       cfg.TTS.APIURL,
		VoiceID:      cfg.TTS.VoiceID,
		OutputFormat: cfg.TTS.OutputFormat,
		Timeout:      cfg.TTS.Timeout,
	})
	if err != nil {
		return err
	}

	svc := render.NewService(
		*cfg,
		synth,
		template.NewPicker(cfg.Media.TemplateDir, nil),
		media.NewComposer(),
	)

	outputPath, err := svc.Run(cmd.Context(), text, output)
	if err != nil {
		return err
	}

	log.Info("Rendered %s", outputPath)
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}
