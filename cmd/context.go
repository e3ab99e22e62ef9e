package cmd

import (
	"fmt"
	"strings"

	"github.com/cubeai/bubix/internal/retriever"
	"github.com/spf13/cobra"
)

var contextCmd = &cobra.Command{
	Use:   "context <profile-id>",
	Short: "Show the conversation context assembled for a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		profiles := st.ProfileRepo()

		user, err := profiles.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if user == nil {
			return fmt.Errorf("profile %q not found", args[0])
		}

		ret := retriever.New(profiles, st.ActivityRepo())

		switch user.UserType {
		case "CHILD":
			cc := ret.GetChildContext(ctx, user.ID)
			fmt.Printf("%s %s (enfant)\n", user.FirstName, user.LastName)
			fmt.Printf("  Activités:   %d\n", cc.ActivityCount)
			fmt.Printf("  Score moyen: %d/100\n", cc.AverageScore)
			fmt.Printf("  Points forts: %s\n", joinOrDash(cc.Strengths))
			fmt.Printf("  À renforcer:  %s\n", joinOrDash(cc.Weaknesses))
			fmt.Printf("  Récent:      %s\n", cc.RecentActivitiesSummary)

		case "PARENT":
			pc := ret.GetParentContext(ctx, user.AccountID)
			fmt.Printf("%s %s (parent)\n\n", user.FirstName, user.LastName)
			for _, child := range pc.Children {
				fmt.Printf("  %s %s — %d activités, moyenne %d/100\n",
					child.Profile.FirstName, child.Profile.LastName,
					child.ActivityCount, child.AverageScore)
			}
			fmt.Println()
			fmt.Println(pc.Insights)
			for _, rec := range pc.Recommendations {
				fmt.Printf("  - %s\n", rec)
			}

		default:
			return fmt.Errorf("profile %q has unsupported type %s", args[0], user.UserType)
		}
		return nil
	},
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
