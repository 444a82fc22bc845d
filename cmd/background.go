package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/hearthdash/hearth/background"
)

// NewBackgroundCmd fetches (or reuses) today's background image URL.
func NewBackgroundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "background",
		Short: "Print today's background image URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			fetcher := background.New(cfg.Background.Endpoint, cfg.Background.AccessKey,
				&http.Client{Timeout: 30 * time.Second}, st, time.Now)
			url := fetcher.Fetch(cmd.Context())
			if url == "" {
				fmt.Println("No background available.")
				return nil
			}
			fmt.Println(url)
			return nil
		},
	}
}
