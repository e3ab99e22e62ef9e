package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ParentPromptRecord logs a parent free-text submission and the assistant's
// reply. Rows are append-only; only status ever transitions.
type ParentPromptRecord struct {
	ent.Schema
}

func (ParentPromptRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ParentPromptRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("parent_id").
			NotEmpty().
			Comment("Parent profile that sent the message"),
		field.String("child_id").
			Default("").
			Comment("Target child, when the message concerns one"),
		field.String("account_id").
			NotEmpty(),
		field.Text("content").
			NotEmpty(),
		field.Text("ai_response").
			Default(""),
		field.String("prompt_type").
			NotEmpty().
			Comment("Classifier category, e.g. PARENT_WISHES"),
		field.String("status").
			Default("PROCESSED").
			Comment("PROCESSED, PENDING or FAILED"),
	}
}

func (ParentPromptRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent_id"),
		index.Fields("account_id"),
		index.Fields("prompt_type"),
	}
}
