package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/cubeai/bubix/internal/recommend"
	"github.com/cubeai/bubix/internal/store"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <child-id>",
	Short: "Generate learning recommendations for a child",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		profiles := st.ProfileRepo()

		child, err := profiles.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if child == nil || child.UserType != "CHILD" {
			return fmt.Errorf("%q is not a child profile", args[0])
		}

		settings, err := profiles.ChildSettings(ctx, child.ID)
		if err != nil {
			return fmt.Errorf("load child settings: %w", err)
		}

		prefs, err := parentPreferences(ctx, profiles, child.AccountID)
		if err != nil {
			return fmt.Errorf("load parent preferences: %w", err)
		}

		activities, err := st.ActivityRepo().RecentByUser(ctx, child.ID, 20)
		if err != nil {
			return fmt.Errorf("load activities: %w", err)
		}
		sessions := make([]recommend.Session, 0, len(activities))
		for _, a := range activities {
			sessions = append(sessions, recommend.Session{CompletionRate: float64(a.Score)})
		}

		recs := recommend.Generate(recommend.Context{
			ChildSettings: settings,
			Preferences:   prefs,
			Sessions:      sessions,
		})

		fmt.Println(recommend.Summary(recs))
		fmt.Println()
		for _, r := range recs {
			fmt.Printf("[%s] %s\n", strings.ToUpper(string(r.Priority)), r.Title)
			fmt.Printf("    %s\n", r.Description)
			fmt.Printf("    Justification: %s\n", r.Rationale)
			for _, step := range r.ImplementationSteps {
				fmt.Printf("    • %s\n", step)
			}
			fmt.Println()
		}
		return nil
	},
}

// parentPreferences finds the account's parent profile and loads the
// preferences it declared, if any.
func parentPreferences(ctx context.Context, profiles store.ProfileRepo, accountID string) (*store.Preferences, error) {
	rows, err := profiles.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range rows {
		if p.AccountID == accountID && p.UserType == "PARENT" {
			return profiles.Preferences(ctx, p.ID)
		}
	}
	return nil, nil
}
