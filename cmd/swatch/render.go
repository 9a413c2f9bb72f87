package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/swatch/internal/tui"
)

type renderOptions struct {
	width int
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:       "render [component...]",
		Short:     "Render components to stdout",
		Long:      "Render components once and exit. Known components: " + strings.Join(tui.ComponentNames, ", ") + ". All are rendered when none is named.",
		ValidArgs: tui.ComponentNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Layout width in cells (defaults to the terminal width)")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions, names []string) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	width := opts.width
	if width <= 0 {
		width = terminalWidth(cmd.OutOrStdout())
	}
	app.Logger.WithFields(map[string]any{"components": len(names), "width": width}).Debug("rendering components")

	err = tui.RenderStatic(cmd.OutOrStdout(), tui.StaticOptions{
		Config: app.Config,
		Theme:  app.Theme,
		Width:  width,
	}, names...)
	if err != nil {
		return newCommandError("render", strings.Join(names, " "), err, "Run 'swatch render --help' to list the known components.")
	}
	return nil
}
