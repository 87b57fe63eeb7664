package main

import (
	"fmt"
	"os"

	"github.com/oukeidos/lingo/translator"
	"github.com/spf13/cobra"
)

func newModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage translation models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.AddCommand(
		newModelsListCmd(),
		newModelsCreateCmd(),
		newModelsDeleteCmd(),
	)
	return cmd
}

type modelsListOptions struct {
	clientOptions
	source      string
	target      string
	showDefault bool
}

func newModelsListCmd() *cobra.Command {
	opts := modelsListOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelsList(cmd, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addClientFlags(cmd.Flags(), &opts.clientOptions)
	cmd.Flags().StringVar(&opts.source, "source", "", "Filter by source language")
	cmd.Flags().StringVar(&opts.target, "target", "", "Filter by target language")
	cmd.Flags().BoolVar(&opts.showDefault, "default", false, "Filter by default-model flag")
	return cmd
}

func runModelsList(cmd *cobra.Command, opts *modelsListOptions) error {
	client, _, err := newServiceClient(&opts.clientOptions)
	if err != nil {
		return err
	}

	listOpts := translator.ListModelsOptions{
		Source: opts.source,
		Target: opts.target,
	}
	// The default filter is tri-state; only forward it when the flag was
	// actually set.
	if cmd.Flags().Changed("default") {
		listOpts.Default = &opts.showDefault
	}

	ctx, stop := signalContext()
	defer stop()
	models, err := client.ListModels(ctx, listOpts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(models) == 0 {
		fmt.Fprintln(out, "No models found.")
		return nil
	}
	fmt.Fprintf(out, "%-24s %-10s %-12s %-8s %s\n", "MODEL", "PAIR", "STATUS", "DEFAULT", "NAME")
	for _, m := range models {
		pair := m.Source + "-" + m.Target
		fmt.Fprintf(out, "%-24s %-10s %-12s %-8t %s\n", m.ModelID, pair, m.Status, m.DefaultModel, m.Name)
	}
	return nil
}

type modelsCreateOptions struct {
	clientOptions
	baseModelID       string
	name              string
	forcedGlossary    string
	parallelCorpus    string
	monolingualCorpus string
}

func newModelsCreateCmd() *cobra.Command {
	opts := modelsCreateOptions{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a custom model from a base model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelsCreate(cmd, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addClientFlags(cmd.Flags(), &opts.clientOptions)
	cmd.Flags().StringVar(&opts.baseModelID, "base-model", "", "Base model ID to customize (required)")
	cmd.Flags().StringVar(&opts.name, "name", "", "Display name for the new model")
	cmd.Flags().StringVar(&opts.forcedGlossary, "forced-glossary", "", "Path to a forced glossary file")
	cmd.Flags().StringVar(&opts.parallelCorpus, "parallel-corpus", "", "Path to a parallel corpus file")
	cmd.Flags().StringVar(&opts.monolingualCorpus, "monolingual-corpus", "", "Path to a monolingual corpus file")
	_ = cmd.MarkFlagRequired("base-model")
	return cmd
}

func runModelsCreate(cmd *cobra.Command, opts *modelsCreateOptions) error {
	createOpts := translator.CreateModelOptions{
		BaseModelID: opts.baseModelID,
		Name:        opts.name,
	}

	files := []struct {
		path string
		dest *[]byte
	}{
		{opts.forcedGlossary, &createOpts.ForcedGlossary},
		{opts.parallelCorpus, &createOpts.ParallelCorpus},
		{opts.monolingualCorpus, &createOpts.MonolingualCorpus},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		data, err := os.ReadFile(f.path)
		if err != nil {
			return fmt.Errorf("failed to read training file: %w", err)
		}
		*f.dest = data
	}

	client, _, err := newServiceClient(&opts.clientOptions)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()
	model, err := client.CreateModel(ctx, createOpts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created model %s (status: %s)\n", model.ModelID, model.Status)
	return nil
}

func newModelsDeleteCmd() *cobra.Command {
	opts := clientOptions{}
	cmd := &cobra.Command{
		Use:   "delete <model-id>",
		Short: "Delete a custom model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelsDelete(cmd, args[0], &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addClientFlags(cmd.Flags(), &opts)
	return cmd
}

func runModelsDelete(cmd *cobra.Command, modelID string, opts *clientOptions) error {
	client, _, err := newServiceClient(opts)
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()
	if err := client.DeleteModel(ctx, modelID); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted model %s\n", modelID)
	return nil
}
