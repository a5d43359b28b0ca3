package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Opportunity holds the schema definition for the Opportunity entity.
type Opportunity struct {
	ent.Schema
}

// Fields of the Opportunity.
func (Opportunity) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Deal name"),
		field.Int("account_id").
			Positive().
			Comment("Account the deal is against"),
		field.Int("contact_id").
			Optional().
			Nillable().
			Comment("Primary point of contact"),
		field.Float("amount").
			Default(0).
			Comment("Expected deal value in USD"),
		field.Enum("stage").
			Values("qualification", "proposal", "negotiation", "won", "lost").
			Default("qualification").
			Comment("Sales pipeline stage"),
		field.Time("close_date").
			Optional().
			Nillable().
			Comment("Expected close date"),
		field.Int("owner_id").
			Optional().
			Nillable().
			Comment("User who owns the deal"),
		field.Int("organization_id").
			Positive().
			Comment("Owning organization"),
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

// Edges of the Opportunity.
func (Opportunity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("opportunities").
			Field("organization_id").
			Unique().
			Required(),
		edge.From("account", Account.Type).
			Ref("opportunities").
			Field("account_id").
			Unique().
			Required(),
		edge.From("contact", Contact.Type).
			Ref("opportunities").
			Field("contact_id").
			Unique(),
		edge.From("owner", User.Type).
			Ref("opportunities").
			Field("owner_id").
			Unique(),
		edge.To("quotes", Quote.Type),
		edge.To("tasks", Task.Type),
		edge.To("interactions", InteractionLog.Type),
	}
}

// Indexes of the Opportunity.
func (Opportunity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "stage"),
		index.Fields("account_id"),
		index.Fields("owner_id"),
		index.Fields("created_at"),
	}
}
