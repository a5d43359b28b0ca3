package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Organization holds the schema definition for the Organization entity.
type Organization struct {
	ent.Schema
}

// Fields of the Organization.
func (Organization) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			NotEmpty().
			Comment("Organization name"),
		field.Text("description").
			Optional().
			Comment("Organization description"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Organization.
func (Organization) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("users", User.Type).
			Comment("Users belonging to this organization"),
		edge.To("accounts", Account.Type),
		edge.To("contacts", Contact.Type),
		edge.To("leads", Lead.Type),
		edge.To("opportunities", Opportunity.Type),
		edge.To("tasks", Task.Type),
		edge.To("products", Product.Type),
		edge.To("quotes", Quote.Type),
		edge.To("line_items", QuoteLineItem.Type),
		edge.To("interactions", InteractionLog.Type),
	}
}
