package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hearthdash/hearth/cli"
	"github.com/hearthdash/hearth/config"
	"github.com/hearthdash/hearth/store"
)

// loadEnv resolves the configuration and opens the persistent store the way
// every subcommand needs it.
func loadEnv(cmd *cobra.Command) (*config.Config, *store.Store, error) {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	path := cfg.Settings.StorePath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, err
		}
		path = filepath.Join(home, ".hearth", "store")
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, st, nil
}
