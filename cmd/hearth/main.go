package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hearthdash/hearth/cli"
	"github.com/hearthdash/hearth/cmd"
	"github.com/hearthdash/hearth/tui"
	"github.com/hearthdash/hearth/tui/theme"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"hearth",
		"A personal dashboard for your terminal",
	)

	// Running hearth with no subcommand opens the dashboard.
	rootCmd.RunE = func(c *cobra.Command, args []string) error {
		theme.InitializeTUI()
		cfg, err := cli.LoadConfig(c)
		if err != nil {
			return err
		}
		return tui.Run(tui.Options{Config: cfg})
	}

	// Subcommands
	rootCmd.AddCommand(cmd.NewAskCmd())
	rootCmd.AddCommand(cmd.NewTodoCmd())
	rootCmd.AddCommand(cmd.NewNoteCmd())
	rootCmd.AddCommand(cmd.NewLinkCmd())
	rootCmd.AddCommand(cmd.NewBookmarkCmd())
	rootCmd.AddCommand(cmd.NewMusicCmd())
	rootCmd.AddCommand(cmd.NewKeyCmd())
	rootCmd.AddCommand(cmd.NewBackgroundCmd())
	rootCmd.AddCommand(cmd.NewConfigCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		_ = cli.NewErrorHandler(verbose).Handle(err)
		os.Exit(1)
	}
}
