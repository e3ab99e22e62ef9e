package store

import (
	"context"
	"fmt"

	"github.com/cubeai/bubix/ent"
	"github.com/cubeai/bubix/ent/account"
	"github.com/cubeai/bubix/ent/childprofile"
	"github.com/cubeai/bubix/ent/parentpreferences"
	"github.com/cubeai/bubix/ent/userprofile"
)

// profileRepo implements ProfileRepo backed by ent.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Get(ctx context.Context, id string) (*Profile, error) {
	up, err := r.client.UserProfile.Query().
		Where(userprofile.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile %s: %w", id, err)
	}
	return mapProfile(up), nil
}

func (r *profileRepo) All(ctx context.Context) ([]Profile, error) {
	rows, err := r.client.UserProfile.Query().
		Order(ent.Asc(userprofile.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}
	out := make([]Profile, 0, len(rows))
	for _, up := range rows {
		out = append(out, *mapProfile(up))
	}
	return out, nil
}

func (r *profileRepo) Account(ctx context.Context, accountID string) (*AccountInfo, error) {
	acc, err := r.client.Account.Query().
		Where(account.ID(accountID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query account %s: %w", accountID, err)
	}
	return &AccountInfo{
		ID:               acc.ID,
		Email:            acc.Email,
		SubscriptionType: acc.SubscriptionType,
	}, nil
}

func (r *profileRepo) ChildrenOf(ctx context.Context, accountID string) ([]Profile, error) {
	rows, err := r.client.UserProfile.Query().
		Where(
			userprofile.AccountID(accountID),
			userprofile.UserTypeEQ(userprofile.UserTypeCHILD),
		).
		Order(ent.Asc(userprofile.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query children of %s: %w", accountID, err)
	}

	out := make([]Profile, 0, len(rows))
	for _, up := range rows {
		out = append(out, *mapProfile(up))
	}
	return out, nil
}

func (r *profileRepo) Preferences(ctx context.Context, parentID string) (*Preferences, error) {
	pp, err := r.client.ParentPreferences.Query().
		Where(parentpreferences.ParentID(parentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query preferences for %s: %w", parentID, err)
	}
	return &Preferences{
		ParentID:          pp.ParentID,
		ChildStrengths:    pp.ChildStrengths,
		FocusAreas:        pp.FocusAreas,
		LearningGoals:     pp.LearningGoals,
		Concerns:          pp.Concerns,
		LearningStyle:     pp.LearningStyle,
		MotivationFactors: pp.MotivationFactors,
		StudyDuration:     pp.StudyDuration,
		BreakFrequency:    pp.BreakFrequency,
	}, nil
}

func (r *profileRepo) ChildSettings(ctx context.Context, childID string) (*ChildSettings, error) {
	cp, err := r.client.ChildProfile.Query().
		Where(childprofile.ChildID(childID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query child settings for %s: %w", childID, err)
	}
	return &ChildSettings{
		ChildID:           cp.ChildID,
		LearningGoals:     cp.LearningGoals,
		PreferredSubjects: cp.PreferredSubjects,
		LearningStyle:     cp.LearningStyle,
		Difficulty:        cp.Difficulty,
		Interests:         cp.Interests,
		SpecialNeeds:      cp.SpecialNeeds,
		CustomNotes:       cp.CustomNotes,
		ParentWishes:      cp.ParentWishes,
	}, nil
}

func (r *profileRepo) CreateAccount(ctx context.Context, acc AccountInfo) error {
	_, err := r.client.Account.Create().
		SetID(acc.ID).
		SetEmail(acc.Email).
		SetSubscriptionType(acc.SubscriptionType).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (r *profileRepo) CreateProfile(ctx context.Context, p Profile) error {
	builder := r.client.UserProfile.Create().
		SetID(p.ID).
		SetAccountID(p.AccountID).
		SetFirstName(p.FirstName).
		SetLastName(p.LastName).
		SetGender(p.Gender).
		SetUserType(userprofile.UserType(p.UserType))

	if p.Age != nil {
		builder = builder.SetAge(*p.Age)
	}
	if p.LastLoginAt != nil {
		builder = builder.SetLastLoginAt(*p.LastLoginAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *profileRepo) SavePreferences(ctx context.Context, prefs Preferences) error {
	_, err := r.client.ParentPreferences.Create().
		SetParentID(prefs.ParentID).
		SetChildStrengths(prefs.ChildStrengths).
		SetFocusAreas(prefs.FocusAreas).
		SetLearningGoals(prefs.LearningGoals).
		SetConcerns(prefs.Concerns).
		SetLearningStyle(prefs.LearningStyle).
		SetMotivationFactors(prefs.MotivationFactors).
		SetStudyDuration(prefs.StudyDuration).
		SetBreakFrequency(prefs.BreakFrequency).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

func (r *profileRepo) SaveChildSettings(ctx context.Context, cs ChildSettings) error {
	_, err := r.client.ChildProfile.Create().
		SetChildID(cs.ChildID).
		SetLearningGoals(cs.LearningGoals).
		SetPreferredSubjects(cs.PreferredSubjects).
		SetLearningStyle(cs.LearningStyle).
		SetDifficulty(cs.Difficulty).
		SetInterests(cs.Interests).
		SetSpecialNeeds(cs.SpecialNeeds).
		SetCustomNotes(cs.CustomNotes).
		SetParentWishes(cs.ParentWishes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save child settings: %w", err)
	}
	return nil
}

func mapProfile(up *ent.UserProfile) *Profile {
	return &Profile{
		ID:          up.ID,
		AccountID:   up.AccountID,
		FirstName:   up.FirstName,
		LastName:    up.LastName,
		Gender:      up.Gender,
		UserType:    string(up.UserType),
		Age:         up.Age,
		LastLoginAt: up.LastLoginAt,
	}
}
