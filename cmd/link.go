package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hearthdash/hearth/errors"
	"github.com/hearthdash/hearth/widgets"
)

// NewLinkCmd creates the quick links command group.
func NewLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage the quick links",
	}
	cmd.AddCommand(newLinkListCmd(), newLinkAddCmd(), newLinkRmCmd())
	return cmd
}

func newLinkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List quick links",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			links, err := widgets.LoadQuickLinks(st)
			if err != nil {
				return err
			}
			for i, l := range links.Links() {
				fmt.Printf("%2d. %s %s  %s\n", i+1, l.Icon, l.Name, l.URL)
			}
			return nil
		},
	}
}

func newLinkAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add a quick link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			links, err := widgets.LoadQuickLinks(st)
			if err != nil {
				return err
			}
			icon, _ := cmd.Flags().GetString("icon")
			link, err := links.Add(args[0], args[1], icon)
			if err != nil {
				return err
			}
			fmt.Printf("Added: %s %s\n", link.Icon, link.Name)
			return nil
		},
	}
	cmd.Flags().String("icon", "", "Icon shown next to the link")
	return cmd
}

func newLinkRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <number>",
		Short: "Remove a quick link by its list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			links, err := widgets.LoadQuickLinks(st)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(links.Links()) {
				return errors.New(errors.ErrCodeInvalidInput, "no quick link at position "+args[0])
			}
			return links.Remove(links.Links()[n-1].ID)
		},
	}
}
