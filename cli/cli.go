// Package cli provides command-line functionality for the Messages desktop
// shell. These commands run without starting the GUI.
package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/yllada/messages-desktop/common"
	"github.com/yllada/messages-desktop/config"
	"github.com/yllada/messages-desktop/shell"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// CLI represents the command-line interface.
type CLI struct {
	out        io.Writer
	configPath string
	stateStore *config.StateStore
	logDir     string
}

// New creates a CLI bound to the default configuration directory.
func New(out io.Writer) (*CLI, error) {
	configPath, err := config.Path()
	if err != nil {
		return nil, fmt.Errorf("failed to locate configuration: %w", err)
	}
	store, err := config.DefaultStateStore()
	if err != nil {
		return nil, fmt.Errorf("failed to locate window state: %w", err)
	}
	return &CLI{
		out:        out,
		configPath: configPath,
		stateStore: store,
		logDir:     common.GetLogDir(),
	}, nil
}

// PrintMenu prints the menu tree with command identifiers and shortcuts.
func (c *CLI) PrintMenu(tree shell.MenuTree) error {
	if err := tree.Validate(); err != nil {
		return err
	}

	for _, sub := range tree.Submenus() {
		fmt.Fprintln(c.out, titleStyle.Render(sub.Label))

		w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
		for _, item := range sub.Items {
			switch item.Kind {
			case shell.ItemSeparator:
				fmt.Fprintln(w, "  ----\t\t")
			case shell.ItemPredefined:
				label := item.Label
				if label == "" {
					label = "(" + item.Predefined.String() + ")"
				}
				fmt.Fprintf(w, "  %s\t%s\t\n", label, "platform")
			default:
				shortcut := "-"
				if item.Accelerator != "" {
					accel, err := shell.ParseAccelerator(item.Accelerator)
					if err != nil {
						return err
					}
					shortcut = accel.GTK()
				}
				fmt.Fprintf(w, "  %s\t%s\t%s\n", item.Label, item.Command.ID(), shortcut)
			}
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// PrintPaths prints where the application keeps its files.
func (c *CLI) PrintPaths() error {
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHAT\tPATH\t")
	fmt.Fprintln(w, "----\t----\t")
	fmt.Fprintf(w, "Configuration\t%s\t%s\n", c.configPath, existsLabel(c.configPath))
	fmt.Fprintf(w, "Window state\t%s\t%s\n", c.stateStore.Path(), existsLabel(c.stateStore.Path()))
	fmt.Fprintf(w, "Log file\t%s\t%s\n",
		filepath.Join(c.logDir, common.LogFileName),
		existsLabel(filepath.Join(c.logDir, common.LogFileName)))
	return w.Flush()
}

func existsLabel(path string) string {
	if common.FileExists(path) {
		return ""
	}
	return dimStyle.Render("(not created)")
}

// ResetWindowState removes the saved window geometry.
func (c *CLI) ResetWindowState() error {
	if err := c.stateStore.Reset(); err != nil {
		return fmt.Errorf("failed to reset window state: %w", err)
	}
	fmt.Fprintf(c.out, "✓ Window state reset (%s)\n", c.stateStore.Path())
	return nil
}

// PrintHelp prints CLI usage help.
func PrintHelp(out io.Writer) {
	fmt.Fprintln(out, titleStyle.Render(common.AppName+" - desktop shell for "+common.AppURL))
	fmt.Fprintln(out, `
Usage:
  messages-desktop [OPTIONS]

Options:
  --version              Show version and exit
  --verbose              Enable debug logging
  --menu                 Print the application menu and exit
  --paths                Show configuration and log file locations
  --reset-window-state   Forget the saved window size
  --help                 Show this help message

Notes:
  - Run without options to launch the GUI
  - Launching again while running brings the window back
  - Closing the window hides it; use Quit (Ctrl+Q) to exit`)
}
