package main

import (
	"fmt"
	"strings"

	"github.com/oukeidos/lingo/internal/detect"
	"github.com/oukeidos/lingo/translator"
	"github.com/spf13/cobra"
)

type identifyOptions struct {
	clientOptions
	offline bool
}

func newIdentifyCmd() *cobra.Command {
	opts := identifyOptions{}
	cmd := &cobra.Command{
		Use:   "identify <text>",
		Short: "Identify the language of text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIdentify(cmd, args, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addClientFlags(cmd.Flags(), &opts.clientOptions)
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Detect locally without calling the service")
	return cmd
}

func runIdentify(cmd *cobra.Command, args []string, opts *identifyOptions) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("text is required")
	}

	var detections []translator.IdentifiedLanguage
	var err error
	if opts.offline {
		detections, err = detect.Identify(text)
	} else {
		var client *translator.Client
		client, _, err = newServiceClient(&opts.clientOptions)
		if err != nil {
			return err
		}
		ctx, stop := signalContext()
		defer stop()
		detections, err = client.Identify(ctx, text)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, d := range detections {
		fmt.Fprintf(out, "  %-8s %.3f\n", d.Language, d.Confidence)
	}
	return nil
}
