package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	scheme     string
	verbose    bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swatch",
		Short:         "Swatch renders themed terminal UI components",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// no subcommand launches the gallery
			return runGallery(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a swatch YAML config")
	cmd.PersistentFlags().StringVar(&flags.scheme, "scheme", "", "Colour scheme: auto, light or dark (overrides the config)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append logs to this file")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
