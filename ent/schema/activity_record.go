package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityRecord is one completed learning activity. Immutable once created.
type ActivityRecord struct {
	ent.Schema
}

func (ActivityRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Child profile that completed the activity"),
		field.String("domain").
			NotEmpty().
			Immutable().
			Comment("Subject, free text: maths, français, sciences..."),
		field.String("node_key").
			NotEmpty().
			Immutable().
			Comment("Exercise identifier"),
		field.Int("score").
			Min(0).
			Max(100).
			Immutable(),
		field.Int("attempts").
			Min(1).
			Default(1).
			Immutable(),
		field.Int64("duration_ms").
			Min(0).
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ActivityRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "created_at"),
		index.Fields("domain"),
	}
}
