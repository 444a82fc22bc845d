package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hearthdash/hearth/widgets"
)

// NewNoteCmd creates the sticky note command group.
func NewNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Show or edit the sticky note",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			notes, err := widgets.LoadNotes(st)
			if err != nil {
				return err
			}
			if notes.Text() == "" {
				fmt.Println("The sticky note is empty.")
				return nil
			}
			fmt.Println(notes.Text())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <text>",
		Short: "Replace the sticky note text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			notes, err := widgets.LoadNotes(st)
			if err != nil {
				return err
			}
			return notes.SetText(strings.Join(args, " "))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Erase the sticky note",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			notes, err := widgets.LoadNotes(st)
			if err != nil {
				return err
			}
			return notes.SetText("")
		},
	})

	return cmd
}
