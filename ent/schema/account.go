package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Account groups the user profiles of one family under a subscription.
type Account struct {
	ent.Schema
}

func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID assigned at creation"),
		field.String("email").
			NotEmpty().
			Unique().
			Comment("Billing contact for the family"),
		field.String("subscription_type").
			Default("FREE").
			Comment("FREE, PREMIUM or ENTERPRISE; read-only context for prompts"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
