package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hearthdash/hearth/errors"
	"github.com/hearthdash/hearth/widgets"
)

// NewBookmarkCmd creates the bookmarks command group.
func NewBookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Manage the bookmarks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			bookmarks, err := widgets.LoadBookmarks(st)
			if err != nil {
				return err
			}
			for i, bm := range bookmarks.Items() {
				fmt.Printf("%2d. %s  %s\n", i+1, bm.Title, bm.URL)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <title> <url>",
		Short: "Add a bookmark",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			bookmarks, err := widgets.LoadBookmarks(st)
			if err != nil {
				return err
			}
			bm, err := bookmarks.Add(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Added: %s\n", bm.Title)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <number>",
		Short: "Remove a bookmark by its list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			bookmarks, err := widgets.LoadBookmarks(st)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(bookmarks.Items()) {
				return errors.New(errors.ErrCodeInvalidInput, "no bookmark at position "+args[0])
			}
			return bookmarks.Remove(bookmarks.Items()[n-1].ID)
		},
	})

	return cmd
}
