package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLanguagesCmd() *cobra.Command {
	opts := clientOptions{}
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List languages the service can identify",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLanguages(cmd, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addClientFlags(cmd.Flags(), &opts)
	return cmd
}

func runLanguages(cmd *cobra.Command, opts *clientOptions) error {
	client, _, err := newServiceClient(opts)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()
	languages, err := client.ListIdentifiableLanguages(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Identifiable Languages:")
	for _, l := range languages {
		fmt.Fprintf(out, "  %-30s [%s]\n", l.Name, l.Language)
	}
	return nil
}
