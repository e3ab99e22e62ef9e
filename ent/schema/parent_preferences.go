package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ParentPreferences holds the structured wishes a parent declared for a
// child's learning. One optional row per parent profile.
type ParentPreferences struct {
	ent.Schema
}

func (ParentPreferences) Fields() []ent.Field {
	return []ent.Field{
		field.String("parent_id").
			NotEmpty().
			Unique(),
		field.JSON("child_strengths", []string{}).
			Optional(),
		field.JSON("focus_areas", []string{}).
			Optional(),
		field.JSON("learning_goals", []string{}).
			Optional(),
		field.JSON("concerns", []string{}).
			Optional(),
		field.String("learning_style").
			Default(""),
		field.JSON("motivation_factors", []string{}).
			Optional(),
		field.Int("study_duration").
			Default(0).
			Comment("Preferred session length in minutes"),
		field.Int("break_frequency").
			Default(0).
			Comment("Preferred minutes between breaks"),
	}
}

func (ParentPreferences) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_id"),
	}
}
