package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserProfile is one family member: a parent or a child.
// A child belongs to the same account as its parent.
type UserProfile struct {
	ent.Schema
}

func (UserProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("account_id").
			NotEmpty().
			Comment("Family account this profile belongs to"),
		field.String("first_name").
			NotEmpty(),
		field.String("last_name").
			NotEmpty(),
		field.String("gender").
			Default(""),
		field.Enum("user_type").
			Values("CHILD", "PARENT"),
		field.Int("age").
			Optional().
			Nillable().
			Comment("Unset for parents"),
		field.Time("last_login_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (UserProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id"),
		index.Fields("account_id", "user_type"),
	}
}
