package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChildProfile holds per-child learning settings. One optional row per
// child profile.
type ChildProfile struct {
	ent.Schema
}

func (ChildProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("child_id").
			NotEmpty().
			Unique(),
		field.JSON("learning_goals", []string{}).
			Optional(),
		field.JSON("preferred_subjects", []string{}).
			Optional(),
		field.String("learning_style").
			Default(""),
		field.String("difficulty").
			Default(""),
		field.JSON("interests", []string{}).
			Optional(),
		field.JSON("special_needs", []string{}).
			Optional(),
		field.Text("custom_notes").
			Default(""),
		field.Text("parent_wishes").
			Default(""),
	}
}

func (ChildProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("child_id"),
	}
}
