package cmd

import (
	"fmt"
	"strings"

	"github.com/cubeai/bubix/internal/chat"
	"github.com/cubeai/bubix/internal/llm"
	"github.com/cubeai/bubix/internal/session"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Run one chat turn from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		message := strings.Join(args, " ")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := chat.New(provider, st.ProfileRepo(), st.ActivityRepo(), st.PromptRepo(), session.NewMemoryStore())
		reply := svc.Send(cmd.Context(), userID, message, nil)

		fmt.Println(reply.Text)
		for _, a := range reply.Actions {
			if a.Href != "" {
				fmt.Printf("  [%s] %s\n", a.Label, a.Href)
			} else {
				fmt.Printf("  [%s]\n", a.Label)
			}
		}

		fmt.Println()
		fmt.Printf("intent: %s", reply.Intent)
		if reply.Model != "" {
			fmt.Printf("  model: %s", reply.Model)
		}
		if reply.Fallback {
			fmt.Print("  (fallback)")
		}
		fmt.Println()
		return nil
	},
}

func init() {
	askCmd.Flags().StringP("user", "u", "", "Profile ID to chat as (empty for visitor)")
}
