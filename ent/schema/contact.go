package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contact holds the schema definition for the Contact entity.
type Contact struct {
	ent.Schema
}

// Fields of the Contact.
func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Contact full name"),
		field.String("email").
			NotEmpty().
			Comment("Email address"),
		field.String("phone").
			Optional().
			Comment("Phone number (E.164 where parseable)"),
		field.String("title").
			Optional().
			Comment("Job title"),
		field.Int("account_id").
			Optional().
			Nillable().
			Comment("Account the contact belongs to"),
		field.Int("organization_id").
			Positive().
			Comment("Owning organization"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the Contact.
func (Contact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("contacts").
			Field("organization_id").
			Unique().
			Required(),
		edge.From("account", Account.Type).
			Ref("contacts").
			Field("account_id").
			Unique(),
		edge.To("opportunities", Opportunity.Type).
			Comment("Opportunities where this contact is the point of contact"),
		edge.To("interactions", InteractionLog.Type),
	}
}

// Indexes of the Contact.
func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		// Get-or-create during lead conversion looks contacts up by email
		// within an organization.
		index.Fields("organization_id", "email"),
		index.Fields("account_id"),
	}
}
