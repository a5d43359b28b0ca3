package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InteractionLog holds the schema definition for the InteractionLog entity.
// Rows are append-only: the application never updates or deletes them.
type InteractionLog struct {
	ent.Schema
}

// Fields of the InteractionLog.
func (InteractionLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Positive().
			Comment("User the activity is attributed to"),
		field.Int("lead_id").
			Optional().
			Nillable().
			Comment("Lead target (any subset of lead/contact/opportunity may be set)"),
		field.Int("contact_id").
			Optional().
			Nillable().
			Comment("Contact target"),
		field.Int("opportunity_id").
			Optional().
			Nillable().
			Comment("Opportunity target"),
		field.Enum("type").
			Values("call", "email", "meeting", "note").
			Comment("Kind of interaction"),
		field.Text("summary").
			NotEmpty().
			Comment("Human-readable description of the event"),
		field.Int("organization_id").
			Positive().
			Comment("Owning organization"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("When the activity happened"),
	}
}

// Edges of the InteractionLog.
func (InteractionLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("interactions").
			Field("organization_id").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("interactions").
			Field("user_id").
			Unique().
			Required(),
		edge.From("lead", Lead.Type).
			Ref("interactions").
			Field("lead_id").
			Unique(),
		edge.From("contact", Contact.Type).
			Ref("interactions").
			Field("contact_id").
			Unique(),
		edge.From("opportunity", Opportunity.Type).
			Ref("interactions").
			Field("opportunity_id").
			Unique(),
	}
}

// Indexes of the InteractionLog.
func (InteractionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "timestamp").
			StorageKey("idx_interaction_log_org_time"),
		index.Fields("user_id", "timestamp").
			StorageKey("idx_interaction_log_user_time"),
		index.Fields("lead_id"),
		index.Fields("contact_id"),
		index.Fields("opportunity_id"),
	}
}
