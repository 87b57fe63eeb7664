package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/oukeidos/lingo/translator"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
)

type translateOptions struct {
	clientOptions
	modelID string
	source  string
	target  string
	stats   bool
}

func newTranslateCmd() *cobra.Command {
	opts := translateOptions{}
	cmd := &cobra.Command{
		Use:   "translate <text>",
		Short: "Translate text using the hosted service",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addClientFlags(cmd.Flags(), &opts.clientOptions)
	cmd.Flags().StringVar(&opts.modelID, "model", "", "Model ID (takes precedence over --source/--target)")
	cmd.Flags().StringVar(&opts.source, "source", "", "Source language code (default: LINGO_DEFAULT_SOURCE)")
	cmd.Flags().StringVar(&opts.target, "target", "", "Target language code (default: LINGO_DEFAULT_TARGET)")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print word/character counts after the translation")
	return cmd
}

func runTranslate(cmd *cobra.Command, args []string, opts *translateOptions) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("text is required")
	}

	client, cfg, err := newServiceClient(&opts.clientOptions)
	if err != nil {
		return err
	}

	source := opts.source
	if source == "" {
		source = cfg.DefaultSource
	}
	target := opts.target
	if target == "" {
		target = cfg.DefaultTarget
	}
	if opts.modelID == "" && (source == "" || target == "") {
		return fmt.Errorf("either --model or both --source and --target are required")
	}

	ctx, stop := signalContext()
	defer stop()

	var result *translator.TranslationResult
	if opts.modelID != "" {
		result, err = client.TranslateWithModel(ctx, text, opts.modelID)
	} else {
		result, err = client.Translate(ctx, text, source, target)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, tr := range result.Translations {
		fmt.Fprintln(out, tr.Translation)
	}

	if opts.stats {
		fmt.Fprintf(out, "\nService counts: words=%d characters=%d\n", result.WordCount, result.CharacterCount)
		fmt.Fprintf(out, "Local input counts: words=%d graphemes=%d\n", wordCount(text), uniseg.GraphemeClusterCount(text))
	}
	return nil
}

// wordCount counts word segments that contain at least one letter or digit,
// so punctuation-only segments are not counted.
func wordCount(s string) int {
	count := 0
	state := -1
	for len(s) > 0 {
		var word string
		word, s, state = uniseg.FirstWordInString(s, state)
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsNumber(r) {
				count++
				break
			}
		}
	}
	return count
}
