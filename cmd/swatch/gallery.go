package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/swatch/internal/logger"
	"github.com/alexisbeaulieu97/swatch/internal/tui"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse the components interactively",
		Long:  `Launch the interactive gallery: press buttons, toggle menu items, switch tabs, type into the input and pick dates.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(cmd, flags)
		},
	}

	return cmd
}

func runGallery(cmd *cobra.Command, flags *rootFlags) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("launch gallery", "checking terminal", errNotTerminal, "Run swatch from an interactive terminal, or use 'swatch render' for static output.")
	}

	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	// the program owns the terminal, so the gallery only logs to a file
	galleryLog := logger.Nop()
	if flags.logFile != "" {
		galleryLog = app.Logger
	}

	m, err := tui.NewModel(tui.Options{Config: app.Config, Theme: app.Theme, Logger: galleryLog})
	if err != nil {
		return newCommandError("launch gallery", "building components", err, "Check the gallery section of your config.")
	}

	galleryLog.Info("launching gallery")
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		galleryLog.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}
	galleryLog.Info("gallery closed")

	return nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// terminalWidth returns the width of writer when it is a terminal, or zero.
func terminalWidth(writer any) int {
	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}
