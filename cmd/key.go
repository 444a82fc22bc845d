package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hearthdash/hearth/assistant"
)

// NewKeyCmd manages the assistant credential.
func NewKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the assistant API key",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <value>",
		Short: "Store the assistant API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			session := assistant.NewSession(st, nil)
			if err := session.SetCredential(args[0]); err != nil {
				return err
			}
			fmt.Println("API key saved.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Report whether an API key is configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			session := assistant.NewSession(st, nil)
			if session.HasCredential() {
				fmt.Println("An API key is configured.")
			} else {
				fmt.Println("No API key configured.")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			if err := st.Delete(assistant.CredentialKey); err != nil {
				return err
			}
			fmt.Println("API key removed.")
			return nil
		},
	})

	return cmd
}
