package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts <account-id>",
	Short: "List recorded parent chat turns for an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rows, err := st.PromptRepo().RecentByAccount(cmd.Context(), args[0], limit)
		if err != nil {
			return fmt.Errorf("query prompts: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No parent prompts recorded.")
			return nil
		}

		for _, p := range rows {
			fmt.Printf("#%d  %s  %s  [%s]\n",
				p.ID,
				p.Timestamp.Local().Format("2006-01-02 15:04"),
				p.ParentID,
				p.PromptType,
			)
			fmt.Printf("  Q: %s\n", p.Content)
			fmt.Printf("  R: %s\n", truncateText(p.AIResponse, 200))
			fmt.Println(strings.Repeat("─", 72))
		}
		return nil
	},
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

func init() {
	promptsCmd.Flags().IntP("limit", "n", 20, "Number of prompts to show")
}
