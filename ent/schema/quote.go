package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Quote holds the schema definition for the Quote entity.
type Quote struct {
	ent.Schema
}

// Fields of the Quote.
func (Quote) Fields() []ent.Field {
	return []ent.Field{
		field.Int("opportunity_id").
			Positive().
			Comment("Opportunity the quote belongs to"),
		field.String("title").
			NotEmpty().
			Comment("Quote title"),
		field.Float("total_price").
			Default(0).
			Comment("Cached sum of line item totals; recomputed on every line item write"),
		field.Int("created_by_id").
			Positive().
			Comment("User who created the quote"),
		field.Text("notes").
			Optional().
			Comment("Free-text notes"),
		field.Int("organization_id").
			Positive().
			Comment("Owning organization"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Quote.
func (Quote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("quotes").
			Field("organization_id").
			Unique().
			Required(),
		edge.From("opportunity", Opportunity.Type).
			Ref("quotes").
			Field("opportunity_id").
			Unique().
			Required(),
		edge.From("created_by", User.Type).
			Ref("quotes").
			Field("created_by_id").
			Unique().
			Required(),
		edge.To("line_items", QuoteLineItem.Type),
	}
}

// Indexes of the Quote.
func (Quote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id"),
		index.Fields("opportunity_id"),
	}
}
