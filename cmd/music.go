package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hearthdash/hearth/errors"
	"github.com/hearthdash/hearth/widgets"
)

// NewMusicCmd creates the music queue command group.
func NewMusicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "music",
		Short: "Manage the music player queue",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List queued tracks",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			queue, err := widgets.LoadMusicQueue(st)
			if err != nil {
				return err
			}
			for i, tr := range queue.Tracks() {
				fmt.Printf("%2d. %s - %s\n", i+1, tr.Artist, tr.Title)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <title> <artist> <url>",
		Short: "Append a track to the queue",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			queue, err := widgets.LoadMusicQueue(st)
			if err != nil {
				return err
			}
			tracks := queue.Tracks()
			id := 0
			for _, tr := range tracks {
				if tr.ID > id {
					id = tr.ID
				}
			}
			tracks = append(tracks, widgets.Track{ID: id + 1, Title: args[0], Artist: args[1], URL: args[2]})
			if err := queue.SetTracks(tracks); err != nil {
				return err
			}
			fmt.Printf("Queued: %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <number>",
		Short: "Remove a track by its list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			queue, err := widgets.LoadMusicQueue(st)
			if err != nil {
				return err
			}
			tracks := queue.Tracks()
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(tracks) {
				return errors.New(errors.ErrCodeInvalidInput, "no track at position "+args[0])
			}
			return queue.SetTracks(append(tracks[:n-1], tracks[n:]...))
		},
	})

	return cmd
}
