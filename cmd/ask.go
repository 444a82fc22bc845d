package cmd

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hearthdash/hearth/assistant"
)

// NewAskCmd creates the one-shot assistant command.
func NewAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the AI assistant a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			client := assistant.NewClient(cfg.Assistant.Endpoint, cfg.Assistant.Model,
				&http.Client{Timeout: 60 * time.Second})
			session := assistant.NewSession(st, client)

			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()
			if err := session.Send(ctx, strings.Join(args, " ")); err != nil {
				return err
			}

			messages := session.Messages()
			if len(messages) == 0 {
				return nil
			}
			last := messages[len(messages)-1]
			if last.Role == assistant.RoleAssistant {
				_, _ = color.New(color.FgCyan, color.Bold).Print("AI: ")
				fmt.Println(last.Content)
			}
			return nil
		},
	}
}
