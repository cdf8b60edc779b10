package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anishnya/simple-grapher/internal/config"
	"github.com/anishnya/simple-grapher/internal/logger"
	"github.com/anishnya/simple-grapher/internal/render"
)

type renderOptions struct {
	InputPath string
	Verbose   bool
}

var renderCmdRunner = runRender

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [config]",
		Short: "Render the chart described by a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.InputPath == "" && len(args) == 1 {
				opts.InputPath = args[0]
			}
			if opts.InputPath == "" {
				return fmt.Errorf("a configuration path is required, pass it as an argument or with --input")
			}
			opts.Verbose = root.verbose

			return renderCmdRunner(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.InputPath, "input", "i", "", "Path to the YAML configuration")

	return cmd
}

func runRender(cmd *cobra.Command, opts renderOptions) error {
	log, err := logger.New(logger.Options{Level: logLevel(opts.Verbose), HumanReadable: true})
	if err != nil {
		return err
	}

	cfg, err := config.ParseConfig(opts.InputPath)
	if err != nil {
		return err
	}

	if problems := cfg.Validate(); len(problems) > 0 {
		for _, problem := range problems {
			fmt.Fprintf(cmd.OutOrStdout(), "problem: %s\n", problem)
		}
		return fmt.Errorf("configuration has %d problem(s)", len(problems))
	}

	ctx := context.Background()

	plans, err := render.BuildBatch(ctx, cfg, log)
	if err != nil {
		return err
	}

	renderer := render.New(log)
	if err := renderer.Render(ctx, cfg, plans); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Graph successfully created and saved to %s\n", cfg.Output.SavePath)
	return nil
}
