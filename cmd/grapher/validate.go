package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anishnya/simple-grapher/internal/config"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "validate [config]",
		Short: "Check a configuration without rendering",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" && len(args) == 1 {
				inputPath = args[0]
			}
			if inputPath == "" {
				return fmt.Errorf("a configuration path is required, pass it as an argument or with --input")
			}

			cfg, err := config.ParseConfig(inputPath)
			if err != nil {
				return err
			}

			problems := cfg.Validate()
			if len(problems) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "configuration is valid")
				return nil
			}

			for _, problem := range problems {
				fmt.Fprintf(cmd.OutOrStdout(), "problem: %s\n", problem)
			}
			return fmt.Errorf("configuration has %d problem(s)", len(problems))
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the YAML configuration")

	return cmd
}
