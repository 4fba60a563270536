package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/go-drift/applet/pkg/graphics"
	"github.com/go-drift/applet/pkg/input"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the key dispatch table",
	Long: `Print every row of the remote-control dispatch table: the key codes,
the action label they resolve to, and the highlight color.

A color swatch is shown when stdout is a terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		printTable(out, input.DefaultTable(), colorEnabled(out))
		return nil
	},
}

var dispatchCmd = &cobra.Command{
	Use:     "dispatch <code|name>...",
	Short:   "Resolve key codes through the dispatch table",
	Example: `  applet dispatch 403 red d7 999`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		color := colorEnabled(out)
		d := input.NewDispatcher(nil)
		for _, arg := range args {
			code, err := input.ParseCode(arg)
			if err != nil {
				return err
			}
			label, highlight := d.Dispatch(code)
			fmt.Fprintf(out, "%-6d %-16s %s\n", code, label, colorCell(highlight, color))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(dispatchCmd)
}

func printTable(out io.Writer, table *input.Table, color bool) {
	fmt.Fprintf(out, "%-9s %-18s %s\n", "CODE", "LABEL", "HIGHLIGHT")
	for _, e := range table.Entries() {
		codes := fmt.Sprint(e.Low)
		label := string(e.Label)
		if e.IsRange() {
			codes = fmt.Sprintf("%d-%d", e.Low, e.High)
			label += ":<n>"
		}
		fmt.Fprintf(out, "%-9s %-18s %s\n", codes, label, colorCell(e.Highlight, color))
	}
	fb := table.Fallback()
	fmt.Fprintf(out, "%-9s %-18s %s\n", "other", fb.Label, colorCell(fb.Highlight, color))
}

func colorCell(c graphics.Color, color bool) string {
	name := c.Name()
	if name == "" {
		name = c.String()
	}
	if !color {
		return name
	}
	r, g, b, _ := c.Components()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m %s", r, g, b, name)
}

func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
