package cmd

import (
	"fmt"
	"strings"

	"github.com/cubeai/bubix/internal/trends"
	"github.com/spf13/cobra"
)

var trendsCmd = &cobra.Command{
	Use:   "trends <child-id>",
	Short: "Predict performance and engagement trends for a child",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		child, err := st.ProfileRepo().Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if child == nil || child.UserType != "CHILD" {
			return fmt.Errorf("%q is not a child profile", args[0])
		}

		activities, err := st.ActivityRepo().RecentByUser(ctx, child.ID, 50)
		if err != nil {
			return fmt.Errorf("load activities: %w", err)
		}

		// RecentByUser returns newest first; the analyses expect
		// chronological order.
		scores := make([]float64, 0, len(activities))
		minutes := make([]float64, 0, len(activities))
		for i := len(activities) - 1; i >= 0; i-- {
			scores = append(scores, float64(activities[i].Score))
			minutes = append(minutes, float64(activities[i].DurationMs)/60000)
		}

		predictions := []trends.Prediction{
			trends.AnalyzePerformance(child.ID, scores),
			trends.AnalyzeDifficulty(child.ID, scores),
		}
		if len(minutes) > 0 {
			current := minutes[len(minutes)-1]
			predictions = append(predictions, trends.AnalyzeEngagement(child.ID, minutes, current))
		}

		for _, p := range predictions {
			fmt.Printf("%s — %s (confiance %.0f%%, horizon %s)\n",
				p.Type, p.Trend, p.Confidence*100, p.Timeframe)
			if len(p.Recommendations) > 0 {
				for _, r := range p.Recommendations {
					fmt.Printf("  - %s\n", r)
				}
			}
			fmt.Println(strings.Repeat("─", 60))
		}
		return nil
	},
}
