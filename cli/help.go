package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hearthdash/hearth/tui/theme"
)

// SetStyledHelp applies consistent hearth styling to a command's help output.
// Call this on the root command before Execute().
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
}

func styledHelpFunc(cmd *cobra.Command, args []string) {
	t := theme.NewTheme("dark")
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Colors.Orange)
	section := lipgloss.NewStyle().Italic(true).Foreground(t.Colors.Orange)
	sub := lipgloss.NewStyle().Foreground(t.Colors.Cyan)

	fmt.Println(" " + title.Render(strings.ToUpper(cmd.CommandPath())))
	if cmd.Short != "" {
		fmt.Println(" " + t.Muted.Render(cmd.Short))
	}
	if cmd.Long != "" {
		fmt.Println()
		for _, line := range strings.Split(strings.TrimSpace(cmd.Long), "\n") {
			fmt.Println(" " + line)
		}
	}

	fmt.Println()
	fmt.Println(" " + section.Render("USAGE"))
	fmt.Println("  " + cmd.UseLine())

	if cmd.HasAvailableSubCommands() {
		fmt.Println()
		fmt.Println(" " + section.Render("COMMANDS"))
		for _, c := range cmd.Commands() {
			if !c.IsAvailableCommand() {
				continue
			}
			fmt.Printf("  %s  %s\n", sub.Render(fmt.Sprintf("%-12s", c.Name())), c.Short)
		}
	}

	printFlagSection(section.Render("FLAGS"), cmd.LocalFlags(), t)
	printFlagSection(section.Render("GLOBAL FLAGS"), cmd.InheritedFlags(), t)
}

func printFlagSection(header string, flags *pflag.FlagSet, t *theme.Theme) {
	if flags == nil || !flags.HasAvailableFlags() {
		return
	}
	fmt.Println()
	fmt.Println(" " + header)
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}
		fmt.Printf("  %-20s %s\n", name, t.Muted.Render(f.Usage))
	})
}
