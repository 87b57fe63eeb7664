package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oukeidos/lingo/internal/logger"
	"github.com/oukeidos/lingo/internal/subtitle"
	"github.com/oukeidos/lingo/translator"
	"github.com/spf13/cobra"
)

type subtitleOptions struct {
	clientOptions
	modelID string
	source  string
	target  string
	yes     bool
}

func newSubtitleCmd() *cobra.Command {
	opts := subtitleOptions{}
	cmd := &cobra.Command{
		Use:   "subtitle <input> <output>",
		Short: "Translate a subtitle file cue by cue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubtitle(cmd, args, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addClientFlags(cmd.Flags(), &opts.clientOptions)
	cmd.Flags().StringVar(&opts.modelID, "model", "", "Model ID (takes precedence over --source/--target)")
	cmd.Flags().StringVar(&opts.source, "source", "", "Source language code")
	cmd.Flags().StringVar(&opts.target, "target", "", "Target language code")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Overwrite the output file if it exists")
	return cmd
}

func validateSubtitleExtension(kind, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := subtitle.SupportedExtensions[ext]; ok {
		return nil
	}
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Errorf("unsupported %s extension %q (supported: .srt, .vtt, .ssa, .ass, .ttml, .stl)", kind, ext)
}

func runSubtitle(cmd *cobra.Command, args []string, opts *subtitleOptions) error {
	input, output := args[0], args[1]
	if err := validateSubtitleExtension("input", input); err != nil {
		return err
	}
	if err := validateSubtitleExtension("output", output); err != nil {
		return err
	}
	if opts.modelID == "" && (opts.source == "" || opts.target == "") {
		return fmt.Errorf("either --model or both --source and --target are required")
	}
	if _, err := os.Stat(output); err == nil && !opts.yes {
		return fmt.Errorf("output file %s already exists (use --yes to overwrite)", output)
	}

	client, _, err := newServiceClient(&opts.clientOptions)
	if err != nil {
		return err
	}

	file, err := subtitle.Open(input)
	if err != nil {
		return err
	}
	logger.Info("Translating subtitles", "cues", file.CueCount())
	start := time.Now()

	ctx, stop := signalContext()
	defer stop()

	err = file.Translate(ctx, func(ctx context.Context, text string) (string, error) {
		var result *translator.TranslationResult
		var err error
		if opts.modelID != "" {
			result, err = client.TranslateWithModel(ctx, text, opts.modelID)
		} else {
			result, err = client.Translate(ctx, text, opts.source, opts.target)
		}
		if err != nil {
			return "", err
		}
		if len(result.Translations) == 0 {
			return "", fmt.Errorf("service returned no translation")
		}
		return result.Translations[0].Translation, nil
	})
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("Translation canceled", "error", err)
			return nil
		}
		return err
	}

	if err := file.Write(output); err != nil {
		return err
	}
	logger.Info("Subtitle translation finished", "output", output, "duration", time.Since(start))
	return nil
}
