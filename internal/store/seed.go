package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Seed populates an empty database with a demo family so the chat and
// analysis commands have something to work with.
func (s *Store) Seed(ctx context.Context) error {
	profiles := s.ProfileRepo()
	activities := s.ActivityRepo()

	accountID := uuid.NewString()
	if err := profiles.CreateAccount(ctx, AccountInfo{
		ID:               accountID,
		Email:            "famille.martin@example.com",
		SubscriptionType: "PREMIUM",
	}); err != nil {
		return err
	}

	parentID := uuid.NewString()
	if err := profiles.CreateProfile(ctx, Profile{
		ID:        parentID,
		AccountID: accountID,
		FirstName: "Marie",
		LastName:  "Martin",
		Gender:    "F",
		UserType:  "PARENT",
	}); err != nil {
		return err
	}

	emmaAge, lucasAge := 8, 11
	emmaID, lucasID := uuid.NewString(), uuid.NewString()
	children := []Profile{
		{ID: emmaID, AccountID: accountID, FirstName: "Emma", LastName: "Martin", Gender: "F", UserType: "CHILD", Age: &emmaAge},
		{ID: lucasID, AccountID: accountID, FirstName: "Lucas", LastName: "Martin", Gender: "M", UserType: "CHILD", Age: &lucasAge},
	}
	for _, c := range children {
		if err := profiles.CreateProfile(ctx, c); err != nil {
			return err
		}
	}

	if err := profiles.SavePreferences(ctx, Preferences{
		ParentID:          parentID,
		ChildStrengths:    []string{"mémoire visuelle", "curiosité"},
		FocusAreas:        []string{"concentration", "lecture"},
		LearningGoals:     []string{"autonomie dans les devoirs"},
		Concerns:          []string{"temps d'écran"},
		LearningStyle:     "visuel",
		MotivationFactors: []string{"badges", "défis en famille"},
		StudyDuration:     30,
		BreakFrequency:    10,
	}); err != nil {
		return err
	}

	if err := profiles.SaveChildSettings(ctx, ChildSettings{
		ChildID:           emmaID,
		LearningGoals:     []string{"tables de multiplication"},
		PreferredSubjects: []string{"maths", "sciences"},
		LearningStyle:     "visuel",
		Difficulty:        "normal",
		Interests:         []string{"animaux", "espace"},
		ParentWishes:      "passer plus de temps sur CubeMatch",
	}); err != nil {
		return err
	}

	now := time.Now()
	type seedActivity struct {
		userID  string
		domain  string
		nodeKey string
		score   int
		daysAgo int
	}
	rows := []seedActivity{
		{emmaID, "maths", "additions-1", 85, 1},
		{emmaID, "maths", "soustractions-1", 95, 2},
		{emmaID, "français", "lecture-2", 60, 3},
		{emmaID, "sciences", "plantes-1", 88, 4},
		{emmaID, "français", "dictée-1", 64, 6},
		{lucasID, "maths", "fractions-2", 55, 1},
		{lucasID, "maths", "multiplications-3", 62, 2},
		{lucasID, "histoire", "moyen-âge-1", 91, 3},
	}
	for _, row := range rows {
		if err := activities.Append(ctx, Activity{
			UserID:     row.userID,
			Domain:     row.domain,
			NodeKey:    row.nodeKey,
			Score:      row.score,
			Attempts:   1,
			DurationMs: 4 * 60 * 1000,
			CreatedAt:  now.AddDate(0, 0, -row.daysAgo),
		}); err != nil {
			return err
		}
	}

	fmt.Printf("Seeded demo family: parent=%s emma=%s lucas=%s account=%s\n",
		parentID, emmaID, lucasID, accountID)
	return nil
}
