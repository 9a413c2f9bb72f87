package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/swatch/internal/components"
	"github.com/alexisbeaulieu97/swatch/pkg/diff"
)

type themeOptions struct {
	format  string
	compare string
}

type themeToken struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

type themeDocument struct {
	Scheme  string       `yaml:"scheme"`
	Palette []themeToken `yaml:"palette"`
	Basic   []string     `yaml:"basic"`
}

func newThemeCmd(flags *rootFlags) *cobra.Command {
	opts := &themeOptions{}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Print the resolved theme tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text or yaml")
	cmd.Flags().StringVar(&opts.compare, "compare", "", "Diff the resolved tokens against a built-in scheme (light or dark)")

	return cmd
}

func runTheme(cmd *cobra.Command, flags *rootFlags, opts *themeOptions) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return err
	}
	defer app.Close()

	doc := newThemeDocument(app.Theme)
	if opts.compare != "" {
		return runThemeCompare(cmd, doc, opts.compare)
	}

	switch opts.format {
	case "yaml":
		encoder := yaml.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent(2)
		if err := encoder.Encode(doc); err != nil {
			return err
		}
		return encoder.Close()
	case "text":
		return renderThemeTable(cmd, doc)
	default:
		return newCommandError("print theme", "choosing output format", fmt.Errorf("unknown format %q", opts.format), "Use --format text or --format yaml.")
	}
}

func newThemeDocument(theme components.Theme) themeDocument {
	p := theme.Palette
	doc := themeDocument{
		Scheme: theme.Scheme.String(),
		Palette: []themeToken{
			{"layout_background", string(p.LayoutBackground)},
			{"card_background", string(p.CardBackground)},
			{"primary", string(p.Primary)},
			{"tab_bar_inactive", string(p.TabBarInactive)},
			{"text", string(p.Text)},
			{"sub_text", string(p.SubText)},
			{"button_press", string(p.ButtonPress)},
			{"input_border", string(p.InputBorder)},
			{"button_control", string(p.ButtonControl)},
			{"basic_border", string(p.BasicBorder)},
			{"danger", string(p.Danger)},
			{"success", string(p.Success)},
		},
	}
	for i := 1; ; i++ {
		shade := theme.Scales.Basic.Shade(i)
		if shade == "" {
			break
		}
		doc.Basic = append(doc.Basic, string(shade))
	}
	return doc
}

func renderThemeTable(cmd *cobra.Command, doc themeDocument) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scheme: %s\n\n", doc.Scheme)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOKEN\tVALUE\tSWATCH")
	for _, token := range doc.Palette {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(token.Value)).Render("██")
		fmt.Fprintf(w, "%s\t%s\t%s\n", token.Name, token.Value, swatch)
	}
	for i, shade := range doc.Basic {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(shade)).Render("██")
		fmt.Fprintf(w, "basic[%d]\t%s\t%s\n", i+1, shade, swatch)
	}
	return w.Flush()
}

func runThemeCompare(cmd *cobra.Command, doc themeDocument, against string) error {
	scheme, err := components.ParseScheme(against)
	if err != nil {
		return newCommandError("compare themes", "choosing the built-in scheme", err, "Use --compare light or --compare dark.")
	}
	builtin := newThemeDocument(components.ThemeFor(scheme))

	out, stats := diff.Lines(builtin.tokenListing(), doc.tokenListing(), "builtin "+builtin.Scheme, "resolved "+doc.Scheme)
	if !stats.Changed() {
		fmt.Fprintf(cmd.OutOrStdout(), "resolved theme matches the built-in %s scheme\n", builtin.Scheme)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	fmt.Fprintf(cmd.OutOrStdout(), "%d added, %d removed\n", stats.Added, stats.Removed)
	return nil
}

// tokenListing renders the tokens one per line without colour.
func (d themeDocument) tokenListing() string {
	var b strings.Builder
	for _, token := range d.Palette {
		fmt.Fprintf(&b, "%s %s\n", token.Name, token.Value)
	}
	for i, shade := range d.Basic {
		fmt.Fprintf(&b, "basic[%d] %s\n", i+1, shade)
	}
	return b.String()
}
