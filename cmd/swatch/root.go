package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swatch",
		Short:         "swatch picks colors on a two-dimensional channel area",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newPointCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
