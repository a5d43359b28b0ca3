package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Prospect full name"),
		field.String("email").
			NotEmpty().
			Comment("Email address"),
		field.String("phone").
			Optional().
			Comment("Phone number (E.164 where parseable)"),
		field.String("company").
			Optional().
			Comment("Company the prospect works for"),
		field.String("source").
			Optional().
			Comment("Where the lead came from (webform, referral, ...)"),
		field.Enum("status").
			Values("new", "contacted", "qualified", "converted", "disqualified").
			Default("new").
			Comment("Lead lifecycle status"),
		field.Int("assigned_to_id").
			Optional().
			Nillable().
			Comment("User responsible for this lead"),
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

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("leads").
			Field("organization_id").
			Unique().
			Required(),
		edge.From("assigned_to", User.Type).
			Ref("assigned_leads").
			Field("assigned_to_id").
			Unique(),
		edge.To("tasks", Task.Type),
		edge.To("interactions", InteractionLog.Type),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "status"),
		index.Fields("organization_id", "email"),
		index.Fields("assigned_to_id"),
		index.Fields("created_at"),
	}
}
